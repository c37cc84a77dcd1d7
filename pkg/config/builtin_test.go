package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

func TestBuiltinStatuses(t *testing.T) {
	builtin := GetBuiltinConfig()
	require.NotEmpty(t, builtin.SeedStatuses)

	// Every (outcome, terminal) pair an action can produce must resolve to
	// exactly one seeded status.
	type key struct {
		outcome  models.OutcomeType
		terminal bool
	}
	seen := make(map[key]string)
	codes := make(map[string]struct{})
	for _, seed := range builtin.SeedStatuses {
		_, dup := codes[seed.StatusCode]
		require.False(t, dup, "duplicate status code %s", seed.StatusCode)
		codes[seed.StatusCode] = struct{}{}
		assert.True(t, seed.OutcomeType.IsValid(), "status %s", seed.StatusCode)
		assert.NotEmpty(t, seed.DisplayLabel, "status %s", seed.StatusCode)

		k := key{seed.OutcomeType, seed.IsTerminal}
		_, dup = seen[k]
		require.False(t, dup, "pair (%s, %v) seeded twice", seed.OutcomeType, seed.IsTerminal)
		seen[k] = seed.StatusCode
	}

	assert.Equal(t, "ACTIVE", seen[key{models.OutcomeActive, false}])
	assert.Equal(t, "ON_HOLD", seen[key{models.OutcomeHold, false}])
	assert.Equal(t, "HIRED", seen[key{models.OutcomeSuccess, true}])
	assert.Equal(t, "REJECTED", seen[key{models.OutcomeFailure, true}])
	assert.Equal(t, "WITHDRAWN", seen[key{models.OutcomeNeutral, true}])
}

func TestBuiltinCapabilities(t *testing.T) {
	builtin := GetBuiltinConfig()

	for role, caps := range builtin.SeedCapabilities {
		assert.True(t, role.IsValid(), "role %s", role)
		assert.NotEmpty(t, caps, "role %s", role)
		seen := make(map[string]struct{}, len(caps))
		for _, cap := range caps {
			assert.NotEmpty(t, cap)
			_, dup := seen[cap]
			assert.False(t, dup, "role %s grants %s twice", role, cap)
			seen[cap] = struct{}{}
		}
	}

	// Owners must be able to administer everything the engine gates on.
	owner := builtin.SeedCapabilities[models.RoleOwner]
	assert.Contains(t, owner, models.CapabilityManageSettings)
	assert.Contains(t, owner, models.CapabilityOverrideFlow)
	assert.Contains(t, owner, models.CapabilityFeedbackAll)

	// Interviewers only ever provide feedback.
	assert.Equal(t, []string{models.CapabilityProvideFeedback}, builtin.SeedCapabilities[models.RoleInterviewer])
}
