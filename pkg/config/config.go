// Package config loads and validates engine configuration: server settings,
// retention policy, and the seed data (status catalog, role capability
// matrix) applied to every new tenant.
package config

import (
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	Server    *ServerConfig
	Retention *RetentionConfig

	// SeedStatuses is the status catalog created for every new tenant,
	// built-in defaults merged with rtr.yaml overrides, ordered by
	// sort_order.
	SeedStatuses []StatusSeed

	// SeedCapabilities maps each role to the capabilities granted at
	// tenant creation.
	SeedCapabilities map[models.Role][]string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8080",
	}
}

// StatusSeed describes one status catalog row to create for a new tenant.
type StatusSeed struct {
	StatusCode   string             `yaml:"status_code"`
	DisplayLabel string             `yaml:"display_label"`
	OutcomeType  models.OutcomeType `yaml:"outcome_type"`
	IsTerminal   bool               `yaml:"is_terminal"`
	SortOrder    int                `yaml:"sort_order"`
	ActionCode   string             `yaml:"action_code,omitempty"`
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Statuses     int
	Roles        int
	Capabilities int
}

// Stats returns counts of loaded seed configuration.
func (c *Config) Stats() Stats {
	caps := 0
	for _, list := range c.SeedCapabilities {
		caps += len(list)
	}
	return Stats{
		Statuses:     len(c.SeedStatuses),
		Roles:        len(c.SeedCapabilities),
		Capabilities: caps,
	}
}
