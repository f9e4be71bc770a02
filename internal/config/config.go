package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string // optional; rate limiting falls back to in-memory without it
	BaseURL     string // public base used to build short URLs
	JWTSecret   string // secret key for JWT token signing
	JWTTTL      int    // JWT token expiration time in hours
	GeoIPDBPath string // path to a MaxMind mmdb file; empty disables geo lookups

	RateLimitRPS          float64 // rate limit for general API endpoints (requests per second)
	RateLimitBurst        int     // burst size for general rate limiting
	RateLimitCreatePerMin int     // link creation limit (requests per minute per caller)
	RateLimitCreateBurst  int     // burst size for link creation
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTL:      getEnvInt("JWT_TTL_HOURS", 168), // 7 days
		GeoIPDBPath: getEnv("GEOIP_DB_PATH", ""),

		RateLimitRPS:          getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:        getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitCreatePerMin: getEnvInt("RATE_LIMIT_CREATE_PER_MIN", 20),
		RateLimitCreateBurst:  getEnvInt("RATE_LIMIT_CREATE_BURST", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
