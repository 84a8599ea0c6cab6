package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string
	CORSOrigins       string
	LogLevel          string
	SeedDemoData      bool
	SpotGoldDefault   string
	SpotSilverDefault string
}

func Load() *Config {
	// Missing .env is fine in production, everything comes from the real
	// environment there.
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment")
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		CORSOrigins:       getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SeedDemoData:      getEnvBool("SEED_DEMO_DATA", true),
		SpotGoldDefault:   getEnv("SPOT_GOLD_DEFAULT", "36500000"),
		SpotSilverDefault: getEnv("SPOT_SILVER_DEFAULT", "495000"),
	}

	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the development default, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
