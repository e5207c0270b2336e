package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Every setting is read once at
// startup; there is no runtime reload.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// DefaultSubject is the identity that login issues tokens for. Credential
	// verification is intentionally out of scope.
	DefaultSubject string

	// RateLimitInterval is the minimum elapsed time between accepted requests
	// from one client IP.
	RateLimitInterval time.Duration

	// ListCacheTTL bounds how long the full entry-list snapshot may be served
	// without recomputation.
	ListCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "journal-backend")
	viper.SetDefault("DEFAULT_SUBJECT", "test_user")
	viper.SetDefault("RATE_LIMIT_INTERVAL", "2s")
	viper.SetDefault("LIST_CACHE_TTL", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "journal-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.DefaultSubject = viper.GetString("DEFAULT_SUBJECT")
	if cfg.DefaultSubject == "" {
		cfg.DefaultSubject = "test_user"
		log.Printf("Warning: DEFAULT_SUBJECT not set. Defaulting to %s.\n", cfg.DefaultSubject)
	}

	rateIntervalStr := viper.GetString("RATE_LIMIT_INTERVAL")
	rateInterval, err := time.ParseDuration(rateIntervalStr)
	if err != nil || rateInterval <= 0 {
		rateInterval = 2 * time.Second
		if rateIntervalStr != "" {
			log.Printf("Warning: Invalid value for RATE_LIMIT_INTERVAL ('%s'). Defaulting to %s.\n", rateIntervalStr, rateInterval.String())
		}
	}
	cfg.RateLimitInterval = rateInterval

	cacheTTLStr := viper.GetString("LIST_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
		if cacheTTLStr != "" {
			log.Printf("Warning: Invalid value for LIST_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
		}
	}
	cfg.ListCacheTTL = cacheTTL

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}
