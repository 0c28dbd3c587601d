package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the local server.
type Config struct {
	DBPath        string
	Addr          string
	SessionSecret string
	GinMode       string
	SeedOnStart   bool
	DownloadDir   string
}

// Load reads the configuration from the environment, with a .env file
// honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:        getEnv("TMS_DB_PATH", "tms.db"),
		Addr:          getEnv("TMS_ADDR", ":8080"),
		SessionSecret: getEnv("TMS_SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		SeedOnStart:   getEnv("TMS_SEED_ON_START", "true") == "true",
		DownloadDir:   getEnv("TMS_DOWNLOAD_DIR", "downloads"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
