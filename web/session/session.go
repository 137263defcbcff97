// Package session manages the admin_token bearer cookie.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName carries the signed admin token.
const CookieName = "admin_token"

// MaxAge matches the token lifetime of 24 hours.
const MaxAge = 24 * 60 * 60

const identityKey = "ADMIN_IDENTITY"

// Identity is the typed request-scoped value attached by the auth
// middleware after a token passed live re-validation.
type Identity struct {
	UserId string
	Email  string
	Role   string
}

// SetAdminCookie stores the token in an HTTP-only, SameSite=Strict
// cookie. Secure is set in production so the cookie only travels over
// TLS there.
func SetAdminCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, MaxAge, "/", "", secure, true)
}

// ClearAdminCookie removes the cookie. Safe to call when no cookie is
// present, which makes logout idempotent.
func ClearAdminCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}

// GetToken returns the raw token from the request cookie, or "".
func GetToken(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetIdentity attaches the verified identity to the gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
