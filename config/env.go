package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	JWTExpiry       string
	SanityProject   string
	SanityDataset   string
	SanityVersion   string
	SanityTimeout   time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	AdminEmail      string
	SupplierEmail   string
	OriginURL       string
	CatalogCacheTTL time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587
	}

	sanityTimeout, _ := time.ParseDuration(getEnv("SANITY_TIMEOUT", "10s"))
	cacheTTL, _ := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "5m"))

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "dental_store"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "24h"),
		SanityProject:   getEnv("SANITY_PROJECT_ID", ""),
		SanityDataset:   getEnv("SANITY_DATASET", "production"),
		SanityVersion:   getEnv("SANITY_API_VERSION", "2021-10-21"),
		SanityTimeout:   sanityTimeout,
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        smtpPort,
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFrom:        getEnv("SMTP_FROM", "noreply@novadent-surgical.com"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@novadent-surgical.com"),
		SupplierEmail:   getEnv("SUPPLIER_EMAIL", "quotes@novadent-surgical.com"),
		OriginURL:       getEnv("ORIGIN_URL", ""),
		CatalogCacheTTL: cacheTTL,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
