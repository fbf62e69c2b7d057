package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	CORSOrigins []string
	DataDir     string
	SampleRate  int // default sample rate for audio requests that omit one
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		DataDir:     getEnv("DATA_DIR", "data"),
		SampleRate:  getEnvInt("SAMPLE_RATE", 16000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
