package config

import (
	"fmt"
	"os"
)

// Config holds the runtime settings for the API server.
type Config struct {
	Port        string
	DatabaseDSN string

	// MailFrom is the sender address on application notifications.
	MailFrom string
	// GmailCredentials / GmailToken are the OAuth secret and cached session
	// files for the Gmail sender.
	GmailCredentials string
	GmailToken       string

	// GeminiAPIKey enables the job-posting extraction endpoint when set.
	GeminiAPIKey string
}

// Load populates config from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:             "8080",
		GmailCredentials: "credential.json",
		GmailToken:       "token.json",
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GMAIL_CREDENTIALS"); v != "" {
		cfg.GmailCredentials = v
	}
	if v := os.Getenv("GMAIL_TOKEN"); v != "" {
		cfg.GmailToken = v
	}

	cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
	cfg.MailFrom = os.Getenv("MAIL_FROM")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if cfg.DatabaseDSN == "" {
		return cfg, fmt.Errorf("missing required environment variable: DATABASE_DSN")
	}

	return cfg, nil
}
