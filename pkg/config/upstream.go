package config

import (
	"fmt"
	"time"
)

// UpstreamConfig holds the settings for the upstream product API.
type UpstreamConfig struct {
	URL       string        `koanf:"url"`
	Timeout   time.Duration `koanf:"timeout"`
	PageLimit int           `koanf:"pageLimit"`
}

func (c *UpstreamConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("upstream URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid upstream timeout: %v", c.Timeout)
	}
	if c.PageLimit <= 0 {
		return fmt.Errorf("invalid upstream page limit: %d", c.PageLimit)
	}
	return nil
}
