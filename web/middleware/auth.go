package middleware

import (
	"net/http"

	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/web/service"
	"github.com/evolvo-uz/evolvo/web/session"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates admin routes. Beyond signature and expiry checks it
// re-validates the account against the credential store on every request,
// so a revoked admin's token stops working before its natural expiry.
// When re-validation fails, the dead cookie is cleared.
func AdminRequired(authService *service.AuthService, userService *service.UserService, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.GetToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": i18n(c, "auth.sessionExpired"),
			})
			return
		}

		claims, ok := authService.VerifyToken(token)
		if !ok {
			logger.Warningf("admin token rejected: invalid or wrong type (ip %s, user agent %q)",
				c.ClientIP(), c.Request.UserAgent())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": i18n(c, "auth.sessionExpired"),
			})
			return
		}

		user, err := userService.GetById(claims.Subject)
		if err != nil {
			if userService.IsNotFound(err) {
				logger.Warningf("admin token rejected: account %s no longer exists (ip %s)",
					claims.Subject, c.ClientIP())
				session.ClearAdminCookie(c, secureCookie)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"message": i18n(c, "auth.sessionExpired"),
				})
				return
			}
			logger.Error("admin auth: credential store lookup failed:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": i18n(c, "fail"),
			})
			return
		}

		if !user.IsAdmin() {
			logger.Warningf("admin token rejected: account %s lost admin role (ip %s)",
				user.Id, c.ClientIP())
			session.ClearAdminCookie(c, secureCookie)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": i18n(c, "auth.sessionExpired"),
			})
			return
		}

		session.SetIdentity(c, session.Identity{
			UserId: user.Id,
			Email:  user.Email,
			Role:   user.Role,
		})
		c.Next()
	}
}
