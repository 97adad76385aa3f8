package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	PostgresDSN string
	QwenURL     string
	QwenAPIKey  string
	QwenModel   string
	FlushDelay  time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvMillis(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:        getenv("SERVER_ADDR", ":8080"),
		PostgresDSN: getenv("POSTGRES_DSN", ""),
		QwenURL:     getenv("QWEN_API_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"),
		QwenAPIKey:  getenv("QWEN_API_KEY", ""),
		QwenModel:   getenv("QWEN_MODEL", "qwen-plus"),
		FlushDelay:  getenvMillis("STORE_FLUSH_MS", 500*time.Millisecond),
	}
	log.Printf("[config] SERVER_ADDR=%s", cfg.Addr)
	log.Printf("[config] QWEN_API_URL=%s", cfg.QwenURL)
	log.Printf("[config] QWEN_MODEL=%s", cfg.QwenModel)
	if cfg.PostgresDSN == "" {
		log.Printf("[config] POSTGRES_DSN empty, state will not survive restarts")
	}
	return cfg
}
