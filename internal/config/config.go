package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mail provider selection. Postmark is the production path; SMTP exists so
// local runs can point at Mailhog without a Postmark token.
const (
	MailProviderPostmark = "postmark"
	MailProviderSMTP     = "smtp"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DatabaseURL    string   `env:"DATABASE_URL,required"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	MailProvider         string `env:"MAIL_PROVIDER" envDefault:"postmark"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	SenderEmail  string `env:"SENDER_EMAIL,required"`
	ReplyToEmail string `env:"REPLY_TO_EMAIL"`
	OwnerEmail   string `env:"OWNER_EMAIL,required"`
	SiteName     string `env:"SITE_NAME" envDefault:"rowanvale.com"`
}

// Load reads .env when present and parses the environment into a Config.
// Missing provider credentials fail here, at startup, not at first send.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.MailProvider {
	case MailProviderPostmark:
		if cfg.PostmarkServerToken == "" {
			return nil, fmt.Errorf("POSTMARK_SERVER_TOKEN is required when MAIL_PROVIDER=postmark")
		}
	case MailProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("SMTP_HOST is required when MAIL_PROVIDER=smtp")
		}
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}

	return cfg, nil
}
