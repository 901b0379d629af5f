// Package environment provides utilities for managing environment variables
// and configuration loading with support for prefixes and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the working directory. A
// missing file is not an error; deployed environments usually have none.
func LoadEnv() error {
	return LoadPath("")
}

// LoadPath loads variables from the .env file at p, or from ./.env when p
// is empty. Variables already present in the process environment win.
func LoadPath(p string) error {
	var err error
	if p != "" {
		err = godotenv.Load(p)
	} else {
		err = godotenv.Load()
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set.
//
//	port := GetEnvOrDefault("PORT", "8080")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix joins prefix and key with an underscore. An empty prefix
// returns the key unchanged.
//
//	GetEnvKeyPrefix("TASKBOARD", "LOG_LEVEL") // TASKBOARD_LOG_LEVEL
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault looks up prefix_key, returning fallback when unset.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

// GetPrefixEnv returns the value of prefix_key or an empty string.
func GetPrefixEnv(prefix, key string) string {
	return os.Getenv(GetEnvKeyPrefix(prefix, key))
}
