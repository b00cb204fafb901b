package config

import (
	"os"
	"time"

	"github.com/collegegram/backend/internal/services"
)

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresConnStr         string
	MongoURI                string
	MongoDatabase           string
	FeedMode                string
	FeedFallbackAll         bool
	StorageTimeout          time.Duration
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "collegegram"),
		FeedMode:                getEnv("FEED_MODE", "friends"),
		FeedFallbackAll:         getEnv("FEED_FALLBACK_ALL", "true") == "true",
		StorageTimeout:          getDuration("STORAGE_TIMEOUT", 5*time.Second),
	}
}

// FeedPolicy translates the feed configuration into the service policy.
func (c *Config) FeedPolicy() services.FeedPolicy {
	mode := services.FeedModeFriends
	if c.FeedMode == string(services.FeedModeAll) {
		mode = services.FeedModeAll
	}
	return services.FeedPolicy{Mode: mode, FallbackToAll: c.FeedFallbackAll}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
