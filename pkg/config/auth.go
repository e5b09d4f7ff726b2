package config

import (
	"fmt"
	"time"
)

// AuthConfig holds the settings for the simulated authentication provider.
type AuthConfig struct {
	Latency           time.Duration `koanf:"latency"`
	MinPasswordLength int           `koanf:"minPasswordLength"`
}

func (c *AuthConfig) Validate() error {
	if c.Latency < 0 {
		return fmt.Errorf("invalid auth latency: %v", c.Latency)
	}
	if c.MinPasswordLength <= 0 {
		return fmt.Errorf("invalid minimum password length: %d", c.MinPasswordLength)
	}
	return nil
}
