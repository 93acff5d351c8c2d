package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type HTTP struct {
	Addr string
}

type Cache struct {
	Size int
}

// Seed points at JSON files loaded into the stores at startup. Empty
// paths mean the collection starts out empty.
type Seed struct {
	Dishes string
	Orders string
}

// Kafka settings for the order event publisher. No brokers means events
// are dropped.
type Kafka struct {
	Brokers []string
	Topic   string
}

type Config struct {
	HTTP  HTTP
	Cache Cache
	Seed  Seed
	Kafka Kafka
}

func Load() *Config {
	_ = godotenv.Load("env/.env")

	var cfg Config
	cfg.HTTP.Addr = envDefault("HTTP_ADDR", ":8080")
	cfg.Cache.Size = envInt("CACHE_SIZE", 1000)
	cfg.Seed.Dishes = strings.TrimSpace(os.Getenv("SEED_DISHES"))
	cfg.Seed.Orders = strings.TrimSpace(os.Getenv("SEED_ORDERS"))
	cfg.Kafka.Brokers = splitCSV(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = envDefault("KAFKA_TOPIC", "order-events")

	if cfg.Cache.Size <= 0 {
		log.Printf("CACHE_SIZE is %d, adjusting to 1", cfg.Cache.Size)
		cfg.Cache.Size = 1
	}
	return &cfg
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
