package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string
	DBDSN    string

	SessionCookieName string
	SessionSecure     bool
	SessionTTL        time.Duration

	// Optional prefix prepended to remote image URLs when building the
	// spec sheet, for hosts that refuse direct server-side fetches.
	SpecsheetImageProxy   string
	SpecsheetImageTimeout time.Duration

	MirrorReloadInterval time.Duration
}

func FromEnv() Config {
	return Config{
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		DBDSN:                 getEnv("DB_DSN", ""),
		SessionCookieName:     getEnv("SESSION_COOKIE_NAME", "mled_session"),
		SessionSecure:         getEnvBool("SESSION_SECURE", false),
		SessionTTL:            getEnvDuration("SESSION_TTL", 12*time.Hour),
		SpecsheetImageProxy:   getEnv("SPECSHEET_IMAGE_PROXY", ""),
		SpecsheetImageTimeout: getEnvDuration("SPECSHEET_IMAGE_TIMEOUT", 15*time.Second),
		MirrorReloadInterval:  getEnvDuration("MIRROR_RELOAD_INTERVAL", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
