package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"voltflow-backend/pkg/biometric"
	"voltflow-backend/pkg/redis"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins []string

	TomTomAPIKey  string
	SearchRadiusM int
	SearchLimit   int

	// DistanceFilterM is how far the device must move before the station
	// list is refreshed.
	DistanceFilterM float64

	Redis redis.Config

	BiometricCapability biometric.Capability
	BiometricSecret     string
}

func Load() *Config {
	// load .env variable
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173"
	}

	jwtExpiry, err := time.ParseDuration(os.Getenv("JWT_EXPIRY"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	return &Config{
		Port:            port,
		MongoURI:        mongoURI,
		JWTSecret:       getEnv("JWT_SECRET", "change-this-in-production"),
		JWTExpiry:       jwtExpiry,
		AllowedOrigins:  strings.Split(allowedOrigins, ","),
		TomTomAPIKey:    os.Getenv("TOMTOM_API_KEY"),
		SearchRadiusM:   getEnvInt("SEARCH_RADIUS_M", 10000),
		SearchLimit:     getEnvInt("SEARCH_LIMIT", 50),
		DistanceFilterM: float64(getEnvInt("DISTANCE_FILTER_M", 50)),
		Redis: redis.Config{
			URL:      os.Getenv("REDIS_URL"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			PoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		},
		BiometricCapability: biometric.Capability(getEnv("BIOMETRIC_CAPABILITY", "none")),
		BiometricSecret:     os.Getenv("BIOMETRIC_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}
