// Package config builds runtime configuration from environment variables so
// main stays lean. Every knob has a development default; production overrides
// via ARCHIVUM_* variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	LogLevel      string
}

// Postgres captures the record store connection. An empty DSN selects the
// in-memory store.
type Postgres struct {
	DSN string
}

// Redis captures the assessment cache connection. An empty URL disables the
// shared cache and falls back to the in-process one.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the audit fan-out. No brokers means audit events stay in
// the local store only.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Engine captures classification engine tunables.
type Engine struct {
	FallbackYears      int
	AssessmentCacheTTL time.Duration
}

// Config is the full application configuration.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Engine   Engine
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:          envString("ARCHIVUM_ADDR", ":8080"),
			JWTSigningKey: envString("ARCHIVUM_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			LogLevel:      envString("ARCHIVUM_LOG_LEVEL", "info"),
		},
		Postgres: Postgres{
			DSN: os.Getenv("ARCHIVUM_POSTGRES_DSN"),
		},
		Redis: Redis{
			URL:          os.Getenv("ARCHIVUM_REDIS_URL"),
			PoolSize:     envInt("ARCHIVUM_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("ARCHIVUM_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("ARCHIVUM_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("ARCHIVUM_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("ARCHIVUM_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers: envList("ARCHIVUM_KAFKA_BROKERS"),
			Topic:   os.Getenv("ARCHIVUM_KAFKA_AUDIT_TOPIC"),
		},
		Engine: Engine{
			FallbackYears:      envInt("ARCHIVUM_FALLBACK_YEARS", 0),
			AssessmentCacheTTL: envDuration("ARCHIVUM_ASSESSMENT_CACHE_TTL", 15*time.Minute),
		},
	}
}

func envString(key, fallback string) string {
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
