package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server wires from the environment.
type Config struct {
	Port         string
	BankName     string
	LogLevel     string
	LogFormat    string
	DatabaseURL  string
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads an optional .env file and the process environment. A missing
// .env is fine; production relies on real environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		BankName:     getEnv("BANK_NAME", "Retail Bank"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "account_operations"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
