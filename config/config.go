// Package config loads the process configuration from the environment once
// at startup. Request-handling code receives a *Config and never reads the
// environment directly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

const (
	// DefaultAdminEmail and DefaultAdminPassword seed the bootstrap admin
	// account outside production. They are intentionally insecure sample
	// values and Validate refuses them in production.
	DefaultAdminEmail    = "admin@evolvo.uz"
	DefaultAdminPassword = "SecureAdmin123!"

	devJWTSecret = "evolvo-dev-secret-change-me"
)

// Config is built once by Load and passed by reference into the server,
// the token issuer and the bootstrap initializer.
type Config struct {
	Production bool
	Listen     string
	Port       int
	DBPath     string
	LogLevel   LogLevel

	JWTSecret     []byte
	AdminEmail    string
	AdminPassword string

	TgBotToken string
	TgChatID   string

	GeminiAPIKey      string
	UnsplashAccessKey string
}

// Load reads configuration from the environment. It never fails; Validate
// decides whether the result is acceptable for the current mode.
func Load() *Config {
	cfg := &Config{
		Production:        envString("EVOLVO_ENV", "") == "production",
		Listen:            envString("EVOLVO_LISTEN", ""),
		Port:              envInt("EVOLVO_PORT", 8080),
		DBPath:            envString("EVOLVO_DB_PATH", "db/evolvo.db"),
		AdminEmail:        envString("ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword:     envString("ADMIN_PASSWORD", ""),
		TgBotToken:        envString("TG_BOT_TOKEN", ""),
		TgChatID:          envString("TG_CHAT_ID", ""),
		GeminiAPIKey:      envString("GEMINI_API_KEY", ""),
		UnsplashAccessKey: envString("UNSPLASH_ACCESS_KEY", ""),
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = []byte(secret)
	} else if !cfg.Production {
		cfg.JWTSecret = []byte(devJWTSecret)
	}

	if cfg.AdminPassword == "" && !cfg.Production {
		cfg.AdminPassword = DefaultAdminPassword
	}

	level := strings.ToLower(envString("EVOLVO_LOG_LEVEL", ""))
	switch LogLevel(level) {
	case Debug, Info, Warn, Error:
		cfg.LogLevel = LogLevel(level)
	default:
		cfg.LogLevel = Info
	}

	return cfg
}

// Validate enforces the fail-fast contract: the process must not start
// without a signing secret and an admin password, and production must not
// run on the development fallbacks.
func (c *Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) == 0 {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	} else if c.Production && string(c.JWTSecret) == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must not use the development fallback in production"))
	}
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is not set"))
	} else if c.Production && c.AdminPassword == DefaultAdminPassword {
		errs = append(errs, errors.New("ADMIN_PASSWORD must not use the sample default in production"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDebug() bool {
	return !c.Production && os.Getenv("EVOLVO_DEBUG") == "true"
}

func (c *Config) GetLogFolder() string {
	logFolderPath := os.Getenv("EVOLVO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n <= 0 {
		return fallback
	}
	return n
}
