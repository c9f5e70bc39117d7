// Package config loads application configuration from environment
// variables. The fixed admin credential pair lives here rather than in
// code: there is still a single privileged account by design, but its
// username and password are supplied at startup.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to one environment variable.
type Config struct {
	Env          string  // application environment (e.g. "dev", "prod")
	Port         string  // HTTP port to listen on
	DataDir      string  // directory holding the delimited-text tables
	JWTSecret    string  // secret used to sign access tokens
	AccessTTLMin int     // access token time-to-live in minutes
	AdminUser    string  // username of the single admin account
	AdminPass    string  // password of the single admin account
	AdminBalance float64 // starting balance when the admin record is provisioned
}

// Load reads configuration from the environment. Required variables are
// enforced by must() and missing values exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DataDir:      must("DATA_DIR"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		AdminUser:    must("ADMIN_USERNAME"),
		AdminPass:    must("ADMIN_PASSWORD"),
		AdminBalance: mustFloat("ADMIN_START_BALANCE"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// mustFloat is like must() but converts the value to a float.
func mustFloat(key string) float64 {
	s := must(key)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid number for %s: %q", key, s)
	}
	return f
}
