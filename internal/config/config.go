package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string
	DBName      string
	RedisAddr   string
	SkipAuth    bool
	Environment string
	AppId       string

	// Legacy registration system the roster sync pulls from.
	// Sync stays disabled while the DSN is empty.
	RosterSyncDSN      string
	RosterSyncSchedule string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "secret"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "go-campfire"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		SkipAuth:           getEnv("SKIP_AUTH", "false") == "true",
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppId:              getEnv("APP_ID", "go-campfire"),
		RosterSyncDSN:      getEnv("ROSTER_SYNC_DSN", ""),
		RosterSyncSchedule: getEnv("ROSTER_SYNC_SCHEDULE", "@every 1h"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
