// Package config reads the runtime configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Snapshot persistence
	Backend      string // "sqlite" or "file"
	SQLiteDBPath string
	SnapshotFile string

	// Family notification targets
	NotifyNumbers []string
}

// Load reads the configuration, applying defaults. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", nil),
		EnablePprof:      getEnv("ENABLE_PPROF", "false") == "true",

		Backend:      getEnv("STORAGE_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "data/financa-pro.db"),
		SnapshotFile: getEnv("SNAPSHOT_FILE", "data/financa-pro.json"),

		NotifyNumbers: getEnvList("NOTIFY_NUMBERS", []string{"+5541987518610", "+5541988403049"}),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}
