package controller

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/web/middleware"
	"github.com/evolvo-uz/evolvo/web/service"
	"github.com/evolvo-uz/evolvo/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the login request body.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AuthController handles admin login, logout and the identity endpoint.
type AuthController struct {
	authService *service.AuthService
	userService *service.UserService
	tgbot       *service.Tgbot

	secureCookie bool
}

// NewAuthController registers the auth routes. The rate limiter is
// injected so only the login route pays for it.
func NewAuthController(g *gin.RouterGroup, authService *service.AuthService, userService *service.UserService,
	tgbot *service.Tgbot, limiter *middleware.LoginRateLimiter, secureCookie bool,
) *AuthController {
	a := &AuthController{
		authService:  authService,
		userService:  userService,
		tgbot:        tgbot,
		secureCookie: secureCookie,
	}

	auth := g.Group("/auth")
	auth.POST("/login", limiter.Middleware(), a.login(limiter))
	auth.POST("/logout", a.logout)
	auth.GET("/me", middleware.AdminRequired(authService, userService, secureCookie), a.me)

	return a
}

func (a *AuthController) login(limiter *middleware.LoginRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form LoginForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.invalidFormData")})
			return
		}
		if form.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.emptyEmail")})
			return
		}
		if form.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.emptyPassword")})
			return
		}
		if _, err := mail.ParseAddress(form.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.invalidEmail")})
			return
		}

		key := limiter.Key(c)
		user, err := a.authService.Login(form.Email, form.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				// The body is identical for every rejection reason so
				// responses cannot be used to enumerate accounts.
				limiter.RecordFailure(key)
				a.tgbot.AdminLoginNotify(form.Email, getRemoteIp(c), c.Request.UserAgent(), false)
				c.JSON(http.StatusUnauthorized, gin.H{"message": I18nWeb(c, "auth.invalidCredentials")})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
			return
		}

		token, err := a.authService.IssueToken(user)
		if err != nil {
			logger.Error("issuing admin token failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
			return
		}

		limiter.Reset(key)
		session.SetAdminCookie(c, token, a.secureCookie)
		logger.Infof("admin %s logged in from %s", user.Email, getRemoteIp(c))
		a.tgbot.AdminLoginNotify(user.Email, getRemoteIp(c), c.Request.UserAgent(), true)

		c.JSON(http.StatusOK, gin.H{
			"message": I18nWeb(c, "auth.loginSuccess"),
			"user": gin.H{
				"id":    user.Id,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// logout clears the cookie unconditionally; calling it twice is fine.
func (a *AuthController) logout(c *gin.Context) {
	session.ClearAdminCookie(c, a.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": I18nWeb(c, "auth.logoutSuccess")})
}

func (a *AuthController) me(c *gin.Context) {
	identity, ok := session.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": I18nWeb(c, "auth.sessionExpired")})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    identity.UserId,
		"email": identity.Email,
		"role":  identity.Role,
	})
}
