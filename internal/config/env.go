package config

import (
	"os"
	"strings"
)

// lookupFunc resolves an environment variable.
type lookupFunc func(key string) (string, bool)

// lookupWithDotEnv prefers a non-empty process environment value and falls
// back to values read from a .env file.
func lookupWithDotEnv(dotenv map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config, lookup lookupFunc) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	if v := get("TAREAS_FILE"); v != "" {
		cfg.TaskFile = v
	}
	if v := get("TAREAS_USER"); v != "" {
		cfg.Username = v
	}

	// Logging configuration
	if v := get("TAREAS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := get("TAREAS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := get("TAREAS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := get("TAREAS_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}

// boolFromString parses the usual truthy spellings; everything else is false.
func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "y":
		return true
	default:
		return false
	}
}
