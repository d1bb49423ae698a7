package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	LogLevel    string
	MaxSamples  int
	OutDir      string
	BaseCorpus  string
	IncludeDir  string
	DatabaseURL string
	NatsURL     string
	NatsToken   string
}

func Load() Config {
	return Config{
		Port:        envInt("QUARRY_PORT", 8760),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		MaxSamples:  envInt("QUARRY_MAX_SAMPLES", 50000),
		OutDir:      envStr("QUARRY_OUT_DIR", "."),
		BaseCorpus:  envStr("QUARRY_BASE_CORPUS", "high_quality_corpus.txt"),
		IncludeDir:  envStr("QUARRY_INCLUDE_DIR", ""),
		DatabaseURL: envStr("DATABASE_URL", ""),
		NatsURL:     envStr("NATS_URL", ""),
		NatsToken:   envStr("NATS_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
