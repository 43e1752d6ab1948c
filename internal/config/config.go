package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env          string
	ListenAddr   string
	DatabaseURL  string
	ChaseWorkers int
}

func Load() (Config, error) {
	cfg := Config{
		Env:          getenv("APP_ENV", "development"),
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ChaseWorkers: getenvInt("CHASE_WORKERS", 0),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
