package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Auth token signing
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Email verification token signing (separate secret and issuer namespace)
	EmailVerificationSecret  string
	EmailTokenExpiryDuration time.Duration

	// Admin moderation
	AdminSecret string

	// Auth cookie
	AuthCookieName string

	// Outbound email
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPassword        string
	EmailFrom           string
	VerificationBaseURL string

	// Rate limiting, ulule formatted rate (e.g. "100-M")
	RateLimit string
}

// EmailTokenIssuer derives the issuer used for email verification tokens so they
// can never be replayed as auth tokens even if the secrets were ever shared.
func (c *Config) EmailTokenIssuer() string {
	return c.JWTIssuer + "/email-verification"
}

// LoadConfig loads configuration from environment variables and .env if present.
// The three secrets are required: the service refuses to start without them.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "user-account-service")
	viper.SetDefault("EMAIL_VERIFICATION_SECRET", "")
	viper.SetDefault("EMAIL_TOKEN_EXPIRY_DURATION", "24h")
	viper.SetDefault("ADMIN_SECRET", "")
	viper.SetDefault("AUTH_COOKIE_NAME", "token")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("VERIFICATION_BASE_URL", "http://localhost:8080")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.EmailVerificationSecret = viper.GetString("EMAIL_VERIFICATION_SECRET")
	if cfg.EmailVerificationSecret == "" {
		return nil, fmt.Errorf("EMAIL_VERIFICATION_SECRET is not set")
	}

	emailExpiryStr := viper.GetString("EMAIL_TOKEN_EXPIRY_DURATION")
	emailExpiryDuration, err := time.ParseDuration(emailExpiryStr)
	if err != nil {
		emailExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for EMAIL_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", emailExpiryStr, emailExpiryDuration.String())
	}
	cfg.EmailTokenExpiryDuration = emailExpiryDuration

	cfg.AdminSecret = viper.GetString("ADMIN_SECRET")
	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET is not set")
	}

	cfg.AuthCookieName = viper.GetString("AUTH_COOKIE_NAME")

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.EmailFrom = viper.GetString("EMAIL_FROM")
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}
	if cfg.SMTPUser == "" {
		log.Println("Warning: SMTP_USER not set. Verification emails will fail to send.")
	}

	cfg.VerificationBaseURL = viper.GetString("VERIFICATION_BASE_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
