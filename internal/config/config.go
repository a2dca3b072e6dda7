// Package config loads service settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the runtime settings for the card rendering service.
type Config struct {
	Port        string
	FrontendURL string
	MediaRoot   string
	MediaURL    string
	SeedFile    string
	Template    string
}

// LoadEnv reads an optional .env file and configures logging.
func LoadEnv() {
	if err := godotenv.Load("./.env"); err != nil {
		log.Info("no .env file found, using process environment")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// FromEnv builds a Config with sensible local defaults.
func FromEnv() Config {
	return Config{
		Port:        envOr("PORT", "8080"),
		FrontendURL: envOr("FRONTEND_URL", "http://localhost:3000"),
		MediaRoot:   envOr("MEDIA_ROOT", "media"),
		MediaURL:    envOr("MEDIA_URL", "/media"),
		SeedFile:    envOr("SEED_FILE", "data/items.json"),
		Template:    envOr("CARD_TEMPLATE", "avery-5388"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
