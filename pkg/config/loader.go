package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// RTRYAMLConfig represents the complete rtr.yaml file structure
type RTRYAMLConfig struct {
	Server       *ServerConfig            `yaml:"server"`
	Retention    *RetentionConfig         `yaml:"retention"`
	Statuses     []StatusSeed             `yaml:"statuses"`
	Capabilities map[models.Role][]string `yaml:"capabilities"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load rtr.yaml from configDir (optional; built-ins apply when absent)
//  2. Expand environment variables
//  3. Merge built-in + user-defined seed data
//  4. Apply default values for server and retention settings
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"statuses", stats.Statuses,
		"roles", stats.Roles,
		"capabilities", stats.Capabilities)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load rtr.yaml (contains server, retention, statuses, capabilities).
	// A missing file is fine: every seed has a built-in default.
	userCfg, err := loader.loadRTRYAML()
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No rtr.yaml found, using built-in defaults")
			userCfg = &RTRYAMLConfig{}
		} else {
			return nil, NewLoadError("rtr.yaml", err)
		}
	}

	// 2. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 3. Merge built-in + user-defined seed data (user overrides built-in)
	statuses := mergeStatusSeeds(builtin.SeedStatuses, userCfg.Statuses)
	capabilities := mergeCapabilities(builtin.SeedCapabilities, userCfg.Capabilities)

	// 4. Resolve server config (merge user YAML with built-in defaults)
	serverCfg := DefaultServerConfig()
	if userCfg.Server != nil {
		if err := mergo.Merge(serverCfg, userCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	// 5. Resolve retention config
	retentionCfg := DefaultRetentionConfig()
	if userCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:        configDir,
		Server:           serverCfg,
		Retention:        retentionCfg,
		SeedStatuses:     statuses,
		SeedCapabilities: capabilities,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadRTRYAML() (*RTRYAMLConfig, error) {
	var config RTRYAMLConfig

	// Initialize map to avoid nil map
	config.Capabilities = make(map[models.Role][]string)

	if err := l.loadYAML("rtr.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
