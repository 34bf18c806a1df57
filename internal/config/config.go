package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. It is parsed once at startup and
// passed to each component at construction; nothing reads the environment
// after Load returns.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`

	// AdminToken gates content-creation endpoints. An empty token means
	// creation is disabled entirely.
	AdminToken string `env:"ADMIN_TOKEN"`

	// Storage roots
	ContentDir  string `env:"CONTENT_DIR" envDefault:"content"`
	MessagesDir string `env:"MESSAGES_DIR" envDefault:"messages"`
	UploadsDir  string `env:"UPLOADS_DIR" envDefault:"uploads"`

	// Upload limits
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envDefault:"png,jpg,jpeg,webp"`
	MaxUploadMB       int64    `env:"MAX_UPLOAD_MB" envDefault:"5"`

	// SMTP relay for contact messages. The relay is attempted only when
	// Host, User, Password and AdminEmail are all set.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	AdminEmail   string `env:"ADMIN_EMAIL"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// SMTPConfigured reports whether every field needed for the contact relay is set.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != "" && c.AdminEmail != ""
}
