package service

import (
	"errors"
	"net/mail"
	"time"

	"github.com/evolvo-uz/evolvo/config"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/util/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenType discriminates admin-scoped tokens from any other credential
// this signer might mint later.
const tokenType = "admin"

// tokenTTL is the fixed lifetime of an admin token and of its cookie.
const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for every authentication failure the
// client may learn about: unknown email, wrong password, non-admin role,
// missing password hash. The specific reason is only logged server-side.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminClaims is the payload embedded in an admin token.
type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Typ   string `json:"typ"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies admin tokens and runs the login and
// bootstrap flows. The signing secret comes from the config object built
// at startup, never from ambient environment lookups.
type AuthService struct {
	cfg         *config.Config
	userService *UserService
}

func NewAuthService(cfg *config.Config, userService *UserService) *AuthService {
	return &AuthService{cfg: cfg, userService: userService}
}

// IssueToken mints a signed 24-hour admin token for the given account.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Email: user.Email,
		Role:  user.Role,
		Typ:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.JWTSecret)
}

// VerifyToken checks signature, expiry, the admin type discriminator and
// the embedded role. Any structural or cryptographic failure yields
// (nil, false); it never propagates an error to the caller.
func (s *AuthService) VerifyToken(tokenString string) (*AdminClaims, bool) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.Typ != tokenType || claims.Role != model.RoleAdmin {
		return nil, false
	}
	return claims, true
}

// Login authenticates an admin by email and password. All client-visible
// failures collapse into ErrInvalidCredentials; store or hasher failures
// surface as distinct internal errors.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userService.GetByEmail(email)
	if err != nil {
		if s.userService.IsNotFound(err) {
			logger.Warningf("login rejected: unknown email %q", email)
			return nil, ErrInvalidCredentials
		}
		logger.Error("login: credential store lookup failed:", err)
		return nil, err
	}

	if !user.IsAdmin() {
		logger.Warningf("login rejected: account %s is not an admin", user.Id)
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		logger.Warningf("login rejected: account %s has no password hash", user.Id)
		return nil, ErrInvalidCredentials
	}

	ok, err := crypto.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		logger.Error("login: password verification failed:", err)
		return nil, err
	}
	if !ok {
		logger.Warningf("login rejected: wrong password for account %s", user.Id)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin makes sure the bootstrap admin account exists. When the
// configured email is absent it is created with the configured password;
// when it exists the call is a no-op. Configuration validity (explicit
// password in production) is enforced earlier by config.Validate.
func (s *AuthService) EnsureAdmin() error {
	existing, err := s.userService.GetByEmail(s.cfg.AdminEmail)
	if err == nil {
		if !existing.IsAdmin() {
			logger.Warningf("bootstrap account %s exists without admin role", s.cfg.AdminEmail)
		}
		return nil
	}
	if !s.userService.IsNotFound(err) {
		return err
	}

	if s.cfg.AdminPassword == "" {
		return errors.New("bootstrap admin password is not configured")
	}
	if s.cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Warning("bootstrap admin uses the sample default password; change it before going live")
	}

	hash, err := crypto.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Id:           uuid.NewString(),
		Email:        s.cfg.AdminEmail,
		FirstName:    "Evolvo",
		LastName:     "Admin",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	}
	if err := s.userService.Upsert(admin); err != nil {
		return err
	}
	logger.Infof("bootstrap admin account %s created", s.cfg.AdminEmail)
	return nil
}
