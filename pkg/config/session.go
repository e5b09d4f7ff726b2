package config

import "fmt"

// SessionConfig holds the settings for durable session storage.
type SessionConfig struct {
	Dir string `koanf:"dir"`
	Key string `koanf:"key"`
}

func (c *SessionConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("session storage directory is not configured")
	}
	if c.Key == "" {
		return fmt.Errorf("session storage key is not configured")
	}
	return nil
}
