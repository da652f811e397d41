package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTIssuer          string
	JWTTTLMinutes      int
	AnalysisTimeoutSec int
	MaxUploadMB        int
	ShortlistFile      string
	SMTPHost           string
	SMTPPort           int
	SMTPFrom           string
	SMTPPassword       string
	LogLevel           string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:          getEnv("JWT_ISSUER", "ats-engine"),
		JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 60),
		AnalysisTimeoutSec: getEnvInt("ANALYSIS_TIMEOUT_SEC", 30),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 16),
		ShortlistFile:      getEnv("SHORTLIST_FILE", "data/shortlisted_candidates.json"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPFrom:           os.Getenv("SMTP_FROM"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
