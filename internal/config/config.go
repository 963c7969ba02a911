package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini API
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// PayPal
	PayPalClientID     string
	PayPalClientSecret string
	PayPalAPIBase      string
	PayPalSDKBase      string

	// DemoUnlockEnabled lets the payment flow fall back to a simulated
	// purchase when the checkout backend is unreachable. Off in production
	// unless explicitly enabled.
	DemoUnlockEnabled bool

	// Image relay used when a direct fetch of a user-supplied URL fails.
	ImageRelayURL string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")

	demoUnlock := environment != "production"
	if v := os.Getenv("DEMO_UNLOCK_ENABLED"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			demoUnlock = parsed
		}
	}

	cfg := &Config{
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-3-flash-preview"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "staging-images"),

		PayPalClientID:     getEnv("PAYPAL_CLIENT_ID", "sb"),
		PayPalClientSecret: getEnv("PAYPAL_CLIENT_SECRET", ""),
		PayPalAPIBase:      getEnv("PAYPAL_API_BASE", "https://api-m.paypal.com"),
		PayPalSDKBase:      getEnv("PAYPAL_SDK_BASE", "https://www.paypal.com/sdk/js"),

		DemoUnlockEnabled: demoUnlock,

		ImageRelayURL: getEnv("IMAGE_RELAY_URL", "https://corsproxy.io/"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: environment,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Reload re-reads the environment and returns a fresh Config. Services hold
// the Config they were constructed with; callers that want new credentials
// rebuild their clients from the reloaded value.
func Reload() (*Config, error) {
	return Load()
}

func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
