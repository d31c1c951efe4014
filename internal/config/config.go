package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Token schemes accepted by AUTH_TOKEN_SCHEME. "email" is the
// compatibility scheme where the token is the admin's plain email;
// "hmac" appends a hex HMAC-SHA256 signature over the email.
const (
	TokenSchemeEmail = "email"
	TokenSchemeHMAC  = "hmac"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URL      string
	Database string
}

type AuthConfig struct {
	// TokenScheme selects how admin tokens are issued and verified.
	// The default "email" scheme is deliberately weak (the token is the
	// admin's email, unsigned and without expiry) and is kept for
	// compatibility with existing panel frontends.
	TokenScheme string
	TokenSecret string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
		},
		Mongo: MongoConfig{
			URL:      getEnv("MONGO_URL", ""),
			Database: getEnv("MONGO_DB", "smm_panel"),
		},
		Auth: AuthConfig{
			TokenScheme: getEnv("AUTH_TOKEN_SCHEME", TokenSchemeEmail),
			TokenSecret: getEnv("AUTH_TOKEN_SECRET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
