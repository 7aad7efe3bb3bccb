package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// FirebaseConfig identifies the Firebase project and web app the backend
// talks to. The JSON keys match the web SDK's firebaseConfig object.
type FirebaseConfig struct {
	APIKey            string `env:"API_KEY" json:"apiKey"`
	AuthDomain        string `env:"AUTH_DOMAIN" json:"authDomain"`
	ProjectID         string `env:"PROJECT_ID" json:"projectId"`
	StorageBucket     string `env:"STORAGE_BUCKET" json:"storageBucket"`
	MessagingSenderID string `env:"MESSAGING_SENDER_ID" json:"messagingSenderId"`
	AppID             string `env:"APP_ID" json:"appId"`
}

var appPlatforms = map[string]bool{
	"web":     true,
	"android": true,
	"ios":     true,
}

// Validate checks that every field is present and that the identifiers are
// consistent with each other.
func (c FirebaseConfig) Validate() error {
	switch {
	case isBlank(c.APIKey):
		return ErrMissingAPIKey
	case isBlank(c.AuthDomain):
		return ErrMissingAuthDomain
	case isBlank(c.ProjectID):
		return ErrMissingProjectID
	case isBlank(c.StorageBucket):
		return ErrMissingStorageBucket
	case isBlank(c.MessagingSenderID):
		return ErrMissingMessagingSenderID
	case isBlank(c.AppID):
		return ErrMissingAppID
	}

	if strings.ContainsAny(c.AuthDomain, "/ \t") {
		return fmt.Errorf("%w: %q", ErrInvalidAuthDomain, c.AuthDomain)
	}

	for _, r := range c.MessagingSenderID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidMessagingSenderID, c.MessagingSenderID)
		}
	}

	// 1:<sender>:<platform>:<hash>
	parts := strings.Split(c.AppID, ":")
	if len(parts) != 4 || parts[0] != "1" || parts[1] != c.MessagingSenderID || !appPlatforms[parts[2]] || parts[3] == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAppID, c.AppID)
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseWebConfig decodes a web SDK firebaseConfig JSON object. Keys the
// backend does not use (measurementId, databaseURL) are ignored.
func ParseWebConfig(r io.Reader) (FirebaseConfig, error) {
	var fc FirebaseConfig
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return FirebaseConfig{}, fmt.Errorf("error decoding firebase web config: %w", err)
	}
	return fc, nil
}

// ReadWebConfig loads the web config from value. A value starting with '{'
// is parsed as inline JSON, anything else is treated as a file path.
func ReadWebConfig(value string) (FirebaseConfig, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "{") {
		return ParseWebConfig(strings.NewReader(value))
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return FirebaseConfig{}, fmt.Errorf("error reading firebase web config: %w", err)
	}
	return ParseWebConfig(bytes.NewReader(data))
}
