package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server is the service configuration, read from the environment.
type Server struct {
	Port              string
	Production        bool
	PresetDir         string
	ClassifierURL     string
	ClassifierTimeout time.Duration
	ClassifierCache   bool
	RedisURL          string
	ResultTTL         time.Duration
	AllowedOrigins    []string
}

// LoadServer reads the service configuration. Unparseable values fall back to defaults.
func LoadServer() Server {
	return Server{
		Port:              getEnv("API_PORT", "8080"),
		Production:        os.Getenv("API_ENV") == "production",
		PresetDir:         DefaultPresetDir(),
		ClassifierURL:     getEnv("CLASSIFIER_URL", "http://127.0.0.1:5000"),
		ClassifierTimeout: getEnvDuration("CLASSIFIER_TIMEOUT", 30*time.Second),
		ClassifierCache:   getEnvBool("ENABLE_CLASSIFIER_CACHE", false),
		RedisURL:          os.Getenv("REDIS_URL"),
		ResultTTL:         getEnvDuration("RESULT_TTL", time.Hour),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
