package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the gateway reads from the environment.
type Config struct {
	Port string

	// Base URL of the shop REST API, e.g. https://api.mishatote.com
	APIURL string

	// Name of the upstream session cookie; store pairs are keyed on it
	SessionCookie string

	// EmailJS credentials for the contact/subscribe forms
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	// Idle lifetime of a visitor's in-memory store pair
	SessionTTL time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	ttlMinutes := 30
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("❌ Invalid SESSION_TTL_MINUTES: %q", v)
		}
		ttlMinutes = n
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		APIURL:            MustGetEnv("API_URL"),
		SessionCookie:     getEnv("SESSION_COOKIE", "session"),
		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		SessionTTL:        time.Duration(ttlMinutes) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// MustGetEnv exits when a required variable is missing.
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("❌ Missing env: %s", key)
	}
	return v
}
