package util

import "os"

// Getenv returns the environment variable's value, or the fallback when
// the variable is unset or empty
func Getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
