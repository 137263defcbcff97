// Package controller provides the HTTP request handlers for the Evolvo
// marketplace: public browsing, the lead-capture flow, the customer
// dashboard and the admin back-office.
package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/web/entity"

	"github.com/gin-gonic/gin"
)

// I18nWeb resolves a localized message via the translation function
// stored by the locale middleware.
func I18nWeb(c *gin.Context, key string, params ...string) string {
	v, ok := c.Get("I18n")
	if !ok {
		logger.Warning("I18n function not present in gin context")
		return key
	}
	fn, ok := v.(func(key string, params ...string) string)
	if !ok {
		return key
	}
	return fn(key, params...)
}

// getRemoteIp extracts the real client address from proxy headers or the
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return strings.TrimSpace(ips[0])
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{Obj: obj}
	if err == nil {
		m.Success = true
		m.Msg = msg
	} else {
		m.Success = false
		m.Msg = msg
		logger.Warning(msg+" "+I18nWeb(c, "fail")+": ", err)
	}
	c.JSON(http.StatusOK, m)
}

func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}
