package config

import "os"

// Config is the ambient, process-scoped configuration for cmd/server: the
// HTTP port and a worker-pool size. Load always sets Workers to 0, and the
// HTTP handlers do not read it; each request's own workers field sets the
// solver's pool size. This is distinct from engine.Config, which is
// solve-scoped and never environment-driven (SPEC_FULL.md §A, Configuration).
type Config struct {
	Port    string
	Workers int
}

// Load reads the port from the PORT environment variable (default "8080"),
// following the teacher's getEnv(key, fallback) idiom.
func Load() (*Config, error) {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		Workers: 0,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
