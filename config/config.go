package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"google.golang.org/api/option"
)

// Config is everything the service reads at startup.
type Config struct {
	Firebase FirebaseConfig `envPrefix:"FIREBASE_"`

	// WebConfig overrides Firebase with a web SDK config file or inline JSON.
	WebConfig       string `env:"FIREBASE_WEB_CONFIG"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`

	Port          string `env:"PORT" envDefault:"8080"`
	LogName       string `env:"LOG_NAME" envDefault:"ndis-connect-api"`
	TasksLocation string `env:"CLOUD_TASKS_LOCATION" envDefault:"australia-southeast1"`
	TasksQueue    string `env:"CLOUD_TASKS_QUEUE" envDefault:"notifications"`
	ServiceURL    string `env:"SERVICE_URL"`

	// TasksServiceAccount signs the OIDC tokens Cloud Tasks attaches to
	// notification tasks.
	TasksServiceAccount string `env:"CLOUD_TASKS_SERVICE_ACCOUNT"`
}

// Load reads the configuration from the environment and validates the
// Firebase record.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.WebConfig != "" {
		fc, err := ReadWebConfig(cfg.WebConfig)
		if err != nil {
			return nil, err
		}
		cfg.Firebase = fc
	}

	if err := cfg.Firebase.Validate(); err != nil {
		return nil, fmt.Errorf("invalid firebase config: %w", err)
	}

	return &cfg, nil
}

// ClientOptions returns the options shared by every Google client the
// service creates. Without a credentials file the clients fall back to
// application default credentials.
func (c *Config) ClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	return opts
}
