package middleware

import "github.com/gin-gonic/gin"

// i18n resolves a localized message via the translation function stored
// by the locale middleware. Falls back to the key when absent (tests).
func i18n(c *gin.Context, key string, params ...string) string {
	v, ok := c.Get("I18n")
	if !ok {
		return key
	}
	fn, ok := v.(func(key string, params ...string) string)
	if !ok {
		return key
	}
	return fn(key, params...)
}
