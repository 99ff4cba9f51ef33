package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TokenTTL       time.Duration
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskforge"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskforge"),
		DbName:         getEnv("MYSQL_DATABASE", "taskforge"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TokenTTL:       parseTokenTTL(os.Getenv("AUTH_TOKEN_TTL")),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// parseTokenTTL reads a Go duration string ("720h"). Empty or invalid means
// tokens never expire.
func parseTokenTTL(value string) time.Duration {
	if strings.TrimSpace(value) == "" {
		return 0
	}

	ttl, err := time.ParseDuration(value)
	if err != nil || ttl < 0 {
		zap.L().Warn("ignoring invalid AUTH_TOKEN_TTL", zap.String("value", value))
		return 0
	}
	return ttl
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
