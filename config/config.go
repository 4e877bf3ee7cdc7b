package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port            string
	BaseURL         string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path          string
	BusyTimeoutMs int
	MaxOpenConns  int
}

type LogConfig struct {
	Level string
}

type Config struct {
	Server ServerConfig
	DB     DatabaseConfig
	Log    LogConfig
	Env    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
			AllowedOrigin:   getEnv("ALLOWED_ORIGIN", ""),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		DB: DatabaseConfig{
			Path:          getEnv("DB_PATH", "user.db"),
			BusyTimeoutMs: getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
			MaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 4),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
		Env: getEnv("ENV", "prod"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid value %q for %s, using %d", value, key, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid value %q for %s, using %s", value, key, defaultValue)
		return defaultValue
	}
	return d
}
