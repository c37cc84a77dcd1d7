package config

import (
	"fmt"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateStatuses(); err != nil {
		return fmt.Errorf("status seed validation failed: %w", err)
	}

	if err := v.validateCapabilities(); err != nil {
		return fmt.Errorf("capability seed validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	if v.cfg.Server == nil || v.cfg.Server.ListenAddr == "" {
		return NewValidationError("server", "server", "listen_addr", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return NewValidationError("retention", "retention", "", ErrMissingRequiredField)
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "retention", "event_ttl", fmt.Errorf("must be positive"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "retention", "cleanup_interval", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateStatuses() error {
	if len(v.cfg.SeedStatuses) == 0 {
		return NewValidationError("status", "statuses", "", fmt.Errorf("at least one status seed required"))
	}

	seenCodes := make(map[string]bool)
	seenActions := make(map[string]string)
	hasActiveLanding := false

	for _, seed := range v.cfg.SeedStatuses {
		if seed.StatusCode == "" {
			return NewValidationError("status", seed.DisplayLabel, "status_code", ErrMissingRequiredField)
		}
		if seed.DisplayLabel == "" {
			return NewValidationError("status", seed.StatusCode, "display_label", ErrMissingRequiredField)
		}
		if !seed.OutcomeType.IsValid() {
			return NewValidationError("status", seed.StatusCode, "outcome_type", fmt.Errorf("%w: %s", ErrInvalidValue, seed.OutcomeType))
		}
		if seenCodes[seed.StatusCode] {
			return NewValidationError("status", seed.StatusCode, "status_code", fmt.Errorf("duplicate status code"))
		}
		seenCodes[seed.StatusCode] = true

		if seed.ActionCode != "" {
			if other, dup := seenActions[seed.ActionCode]; dup {
				return NewValidationError("status", seed.StatusCode, "action_code",
					fmt.Errorf("action code %q already mapped to status %q", seed.ActionCode, other))
			}
			seenActions[seed.ActionCode] = seed.StatusCode
		}

		if seed.OutcomeType == models.OutcomeActive && !seed.IsTerminal {
			hasActiveLanding = true
		}
	}

	// Successful non-terminal actions resolve into the lowest-sorted ACTIVE
	// status; without one, every stage transition would fail.
	if !hasActiveLanding {
		return NewValidationError("status", "statuses", "",
			fmt.Errorf("at least one non-terminal status with ACTIVE outcome required"))
	}

	return nil
}

func (v *ConfigValidator) validateCapabilities() error {
	for role, caps := range v.cfg.SeedCapabilities {
		if !role.IsValid() {
			return NewValidationError("capability", string(role), "role", fmt.Errorf("%w: %s", ErrInvalidValue, role))
		}
		for _, capability := range caps {
			if capability == "" {
				return NewValidationError("capability", string(role), "capability", ErrMissingRequiredField)
			}
		}
	}
	return nil
}
