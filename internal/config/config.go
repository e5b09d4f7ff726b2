package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/glowmart/pkg/config"
	"github.com/abgdnv/glowmart/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig     `koanf:"server"`
	Upstream   config.UpstreamConfig `koanf:"upstream"`
	Session    config.SessionConfig  `koanf:"session"`
	Auth       config.AuthConfig     `koanf:"auth"`
	Log        config.LogConfig      `koanf:"log"`
	PProf      config.PProfConfig    `koanf:"pprof"`
	Shutdown   config.ShutdownConfig `koanf:"shutdown"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Upstream Product API ---\n")
	b.WriteString(fmt.Sprintf("  upstream.url: %s\n", c.Upstream.URL))
	b.WriteString(fmt.Sprintf("  upstream.timeout: %s\n", c.Upstream.Timeout))
	b.WriteString(fmt.Sprintf("  upstream.pageLimit: %d\n", c.Upstream.PageLimit))

	b.WriteString("\n--- Session Storage ---\n")
	b.WriteString(fmt.Sprintf("  session.dir: %s\n", c.Session.Dir))
	b.WriteString(fmt.Sprintf("  session.key: %s\n", c.Session.Key))

	b.WriteString("\n--- Auth Simulation ---\n")
	b.WriteString(fmt.Sprintf("  auth.latency: %s\n", c.Auth.Latency))
	b.WriteString(fmt.Sprintf("  auth.minPasswordLength: %d\n", c.Auth.MinPasswordLength))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	return nil
}
