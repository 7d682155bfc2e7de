// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	Port    string
	SiteURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSchema   string

	// Privileged credentials for note writes and deletes. Mirrors the
	// read-key / service-key split of the hosted setup; falls back to the
	// read-tier user when unset.
	DBAdminUser     string
	DBAdminPassword string

	// Shared secret compared against the x-admin-key header on DELETE.
	AdminDeleteKey string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:  getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		SiteURL: getEnv("SITE_URL", "http://127.0.0.1:8080"),

		DBHost:     getEnv("BIBLE_DB_HOST", "localhost"),
		DBPort:     getEnv("BIBLE_DB_PORT", "5432"),
		DBName:     getEnv("BIBLE_DB_DATABASE", "bible_notes"),
		DBUser:     getEnv("BIBLE_DB_USERNAME", "postgres"),
		DBPassword: getEnv("BIBLE_DB_PASSWORD", ""),
		DBSchema:   getEnv("BIBLE_DB_SCHEMA", "public"),

		DBAdminUser:     getEnv("BIBLE_DB_ADMIN_USERNAME", ""),
		DBAdminPassword: getEnv("BIBLE_DB_ADMIN_PASSWORD", ""),

		AdminDeleteKey: getEnv("ADMIN_DELETE_KEY", ""),
	}

	if cfg.DBAdminUser == "" {
		cfg.DBAdminUser = cfg.DBUser
		cfg.DBAdminPassword = cfg.DBPassword
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
