package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env      string
	HTTPPort string
	RateRPS  int
}

func Load() Config {
	return Config{
		Env:      get("APP_ENV", "dev"),
		HTTPPort: get("HTTP_PORT", "8080"),
		RateRPS:  getInt("RATE_RPS", 100),
	}
}

func get(key, def string) string { v := os.Getenv(key); if v == "" { return def }; return v }

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}
