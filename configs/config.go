package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource   string
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration
	AuthDomain string

	AdminID       string
	AdminName     string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:   getEnv("DB_SOURCE", "culinaryflow.db"),
		Port:       getEnv("PORT", "8000"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     time.Duration(24) * time.Hour,
		AuthDomain: getEnv("AUTH_DOMAIN", "culinaryflow.local"),

		AdminID:       getEnv("ADMIN_ID", ""),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
