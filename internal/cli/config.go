package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("FEAST_SERVER", "http://localhost:8080"),
		SessionFile: getEnvOrDefault("FEAST_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the current session id from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session yet is fine
		}
		return err
	}

	c.Session = strings.TrimSpace(string(data))
	return nil
}

// SaveSession remembers the session id for later commands
func (c *Config) SaveSession(id string) error {
	c.Session = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession forgets the saved session id
func (c *Config) ClearSession() error {
	c.Session = ""
	if err := os.Remove(c.SessionFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feast/session"
	}
	return filepath.Join(home, ".feast", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
