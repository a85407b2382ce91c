package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the dispatcher needs for one run.
type Config struct {
	// LLM settings.
	OpenAIKey string

	// Outbound mail settings.
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	EmailFrom      string
	EmailRecipient string

	// Pipeline settings.
	HeadlineLimit int // capped to stay inside free-tier per-minute quotas
	LocalFallback bool
	LogLevel      string
}

// Load reads configuration from environment variables and validates the
// required ones. A validation failure is fatal before the pipeline starts.
func Load() (Config, error) {
	cfg := Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		SMTPHost:       envStr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       envInt("SMTP_PORT", 587),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		EmailFrom:      os.Getenv("EMAIL_FROM"),
		EmailRecipient: os.Getenv("EMAIL_RECIPIENT"),
		HeadlineLimit:  envInt("HEADLINE_LIMIT", 5),
		LocalFallback:  envBool("LOCAL_SENTIMENT_FALLBACK", false),
		LogLevel:       envStr("LOG_LEVEL", "info"),
	}

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required values are present and not left at the
// placeholder values a freshly copied .env template ships with.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"OPENAI_API_KEY", c.OpenAIKey},
		{"SMTP_USER", c.SMTPUser},
		{"SMTP_PASSWORD", c.SMTPPassword},
		{"EMAIL_RECIPIENT", c.EmailRecipient},
	}

	var missing []string
	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if isPlaceholder(c.OpenAIKey) {
		return fmt.Errorf("config: OPENAI_API_KEY appears to be a placeholder")
	}
	if isPlaceholder(c.SMTPUser) || !strings.Contains(c.SMTPUser, "@") {
		return fmt.Errorf("config: SMTP_USER appears to be invalid")
	}
	if !strings.Contains(c.EmailRecipient, "@") {
		return fmt.Errorf("config: EMAIL_RECIPIENT appears to be invalid")
	}
	if c.HeadlineLimit <= 0 {
		return fmt.Errorf("config: HEADLINE_LIMIT must be positive")
	}

	return nil
}

func isPlaceholder(v string) bool {
	return strings.Contains(strings.ToLower(v), "your_")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
