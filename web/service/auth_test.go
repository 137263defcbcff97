package service

import (
	"os"
	"testing"
	"time"

	"github.com/evolvo-uz/evolvo/config"
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/util/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath, false))
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     []byte("test-signing-secret"),
		AdminEmail:    config.DefaultAdminEmail,
		AdminPassword: config.DefaultAdminPassword,
	}
}

func TestEnsureAdminCreatesAndIsIdempotent(t *testing.T) {
	setup(t)
	defer teardown()

	userService := &UserService{}
	authService := NewAuthService(testConfig(), userService)

	require.NoError(t, authService.EnsureAdmin())

	admin, err := userService.GetByEmail(config.DefaultAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.PasswordHash)

	// Second run must not touch the existing account.
	require.NoError(t, authService.EnsureAdmin())
	again, err := userService.GetByEmail(config.DefaultAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, admin.Id, again.Id)
	assert.Equal(t, admin.PasswordHash, again.PasswordHash)
}

func TestEnsureAdminRequiresPassword(t *testing.T) {
	setup(t)
	defer teardown()

	cfg := testConfig()
	cfg.AdminPassword = ""
	authService := NewAuthService(cfg, &UserService{})

	assert.Error(t, authService.EnsureAdmin())
}

func TestLoginOutcomes(t *testing.T) {
	setup(t)
	defer teardown()

	userService := &UserService{}
	authService := NewAuthService(testConfig(), userService)
	require.NoError(t, authService.EnsureAdmin())

	hash, err := crypto.HashPassword("customer-password")
	require.NoError(t, err)
	require.NoError(t, userService.Upsert(&model.User{
		Id:           uuid.NewString(),
		Email:        "customer@example.uz",
		Role:         model.RoleUser,
		PasswordHash: hash,
	}))
	require.NoError(t, userService.Upsert(&model.User{
		Id:    uuid.NewString(),
		Email: "oauth-admin@example.uz",
		Role:  model.RoleAdmin,
	}))

	t.Run("valid admin", func(t *testing.T) {
		user, err := authService.Login(config.DefaultAdminEmail, config.DefaultAdminPassword)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authService.Login(config.DefaultAdminEmail, "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authService.Login("ghost@example.uz", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("non-admin role fails even with correct password", func(t *testing.T) {
		_, err := authService.Login("customer@example.uz", "customer-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("admin without password hash fails closed", func(t *testing.T) {
		_, err := authService.Login("oauth-admin@example.uz", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = authService.Login("oauth-admin@example.uz", "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	authService := NewAuthService(testConfig(), &UserService{})

	user := &model.User{
		Id:    uuid.NewString(),
		Email: config.DefaultAdminEmail,
		Role:  model.RoleAdmin,
	}
	token, err := authService.IssueToken(user)
	require.NoError(t, err)

	claims, ok := authService.VerifyToken(token)
	require.True(t, ok)
	assert.Equal(t, user.Id, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyTokenRejections(t *testing.T) {
	cfg := testConfig()
	authService := NewAuthService(cfg, &UserService{})

	sign := func(claims AdminClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.JWTSecret)
		require.NoError(t, err)
		return token
	}

	now := time.Now()
	base := AdminClaims{
		Email: config.DefaultAdminEmail,
		Role:  model.RoleAdmin,
		Typ:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	t.Run("garbage", func(t *testing.T) {
		_, ok := authService.VerifyToken("not-a-token")
		assert.False(t, ok)
	})

	t.Run("expired", func(t *testing.T) {
		expired := base
		expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, ok := authService.VerifyToken(sign(expired))
		assert.False(t, ok)
	})

	t.Run("wrong type discriminator", func(t *testing.T) {
		wrongTyp := base
		wrongTyp.Typ = "refresh"
		_, ok := authService.VerifyToken(sign(wrongTyp))
		assert.False(t, ok)
	})

	t.Run("non-admin role claim", func(t *testing.T) {
		wrongRole := base
		wrongRole.Role = model.RoleUser
		_, ok := authService.VerifyToken(sign(wrongRole))
		assert.False(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, base).SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, ok := authService.VerifyToken(other)
		assert.False(t, ok)
	})
}
