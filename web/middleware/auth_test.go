package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/evolvo-uz/evolvo/config"
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/web/service"
	"github.com/evolvo-uz/evolvo/web/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*service.AuthService, *service.UserService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	os.Remove("test.db")
	require.NoError(t, database.InitDB("test.db", false))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove("test.db")
	})

	cfg := &config.Config{
		JWTSecret:     []byte("middleware-test-secret"),
		AdminEmail:    config.DefaultAdminEmail,
		AdminPassword: config.DefaultAdminPassword,
	}
	userService := &service.UserService{}
	authService := service.NewAuthService(cfg, userService)

	engine := gin.New()
	engine.GET("/guarded", AdminRequired(authService, userService, false), func(c *gin.Context) {
		identity, _ := session.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.UserId, "role": identity.Role})
	})
	return authService, userService, engine
}

func get(engine *gin.Engine, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	engine.ServeHTTP(w, req)
	return w
}

func clearsCookie(w *httptest.ResponseRecorder) bool {
	for _, sc := range w.Result().Cookies() {
		if sc.Name == session.CookieName && sc.Value == "" && sc.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestAdminRequiredNoToken(t *testing.T) {
	_, _, engine := setupAuthTest(t)
	w := get(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredInvalidToken(t *testing.T) {
	_, _, engine := setupAuthTest(t)
	w := get(engine, "garbage.token.value")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAccountMissing(t *testing.T) {
	authService, _, engine := setupAuthTest(t)

	// Token for an account that was never stored.
	token, err := authService.IssueToken(&model.User{
		Id:    uuid.NewString(),
		Email: "phantom@example.uz",
		Role:  model.RoleAdmin,
	})
	require.NoError(t, err)

	w := get(engine, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, clearsCookie(w), "dead credential should be cleared")
}

func TestAdminRequiredRoleRevoked(t *testing.T) {
	authService, userService, engine := setupAuthTest(t)
	require.NoError(t, authService.EnsureAdmin())

	admin, err := userService.GetByEmail(config.DefaultAdminEmail)
	require.NoError(t, err)
	token, err := authService.IssueToken(admin)
	require.NoError(t, err)

	// Token works while the account holds the admin role.
	w := get(engine, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), admin.Id))

	// Downgrade the role; the same unexpired token must stop working.
	require.NoError(t, userService.UpdateRole(admin.Id, model.RoleUser))
	w = get(engine, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, clearsCookie(w), "revoked credential should be cleared")
}
