// Package config reads typed settings from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// GetEnvInt returns the value of an environment variable as an integer.
//
// If the environment variable is not set, empty, or cannot be parsed as an integer,
// this function returns the default value. A value that is set but unparsable
// is logged as a warning.
//
// Example:
//
//	limit := GetEnvInt("PAGINATION_MAX_LIMIT", 100)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}

	return value
}
