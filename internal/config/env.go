package config

import "os"

// Environment variables that override CLI defaults.
const (
	EnvDBPath  = "STARCATCH_DB"
	EnvSSHAddr = "STARCATCH_SSH_ADDR"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
