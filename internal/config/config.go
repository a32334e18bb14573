package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MongoURI       string
	PostgresURI    string
	RedisURI       string
	Port           string
	FrontendURL    string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)
	Environment    string   // ENV: production, development, etc.

	// Companion chat relay (text-generation endpoint). Always configuration,
	// never a hard-coded remote address. Empty means fallback-only mode.
	CompanionURL     string
	CompanionTimeout time.Duration
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// CORS: allow multiple origins so the production frontend works
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	timeoutSecs := 10
	if v := getEnv("COMPANION_TIMEOUT_SECONDS", ""); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSecs = parsed
		}
	}

	return &Config{
		MongoURI:         getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/mindgarden")),
		PostgresURI:      getEnv("POSTGRES_URI", "postgres://localhost:5432/mindgarden?sslmode=disable"),
		RedisURI:         getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Environment:      env,
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins:   allowedOrigins,
		CompanionURL:     strings.TrimRight(getEnv("COMPANION_URL", ""), "/"),
		CompanionTimeout: time.Duration(timeoutSecs) * time.Second,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
