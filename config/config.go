package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

type Config struct {
	AppPort     string
	DBDriver    string // postgres, mysql, sqlite
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DBDSN       string // jika diisi, menggantikan DSN hasil rakitan
	JWTSecret   string
	JWTTTLHours int
	RequireAuth bool
	LogLevel    slog.Level
	CORSOrigins string
}

// Load membaca konfigurasi dari environment (panggil godotenv.Load lebih dulu).
func Load() Config {
	return Config{
		AppPort:     GetEnv("APP_PORT", "3000"),
		DBDriver:    strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBHost:      GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:      GetEnv("DB_PORT", "5432"),
		DBUser:      GetEnv("DB_USER", "postgres"),
		DBPassword:  GetEnv("DB_PASSWORD", ""),
		DBName:      GetEnv("DB_NAME", "kas_siswa"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "disable"),
		DBDSN:       GetEnv("DB_DSN", ""),
		JWTSecret:   GetEnv("JWT_SECRET", "rahasia-kas-siswa"),
		JWTTTLHours: GetEnvAsInt("JWT_TTL_HOURS", 24),
		RequireAuth: GetEnvAsBool("REQUIRE_AUTH", false),
		LogLevel:    parseLevel(GetEnv("LOG_LEVEL", "info")),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
