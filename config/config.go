package config

import (
	"os"

	"github.com/joho/godotenv"
)

// JWTSecret signs bearer tokens — read from env or fallback.
var JWTSecret = []byte(getEnv("JWT_SECRET", "little_lemon_super_secret_2024"))

// Load reads .env (if present) and re-resolves env-backed settings.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "little_lemon_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
