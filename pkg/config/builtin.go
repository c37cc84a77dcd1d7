package config

import (
	"sync"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// BuiltinConfig holds all built-in configuration data: the default status
// catalog and the default role capability matrix applied when rtr.yaml does
// not override them.
type BuiltinConfig struct {
	SeedStatuses     []StatusSeed
	SeedCapabilities map[models.Role][]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		SeedStatuses:     initBuiltinStatuses(),
		SeedCapabilities: initBuiltinCapabilities(),
	}
}

// initBuiltinStatuses returns the default status catalog. Exactly one
// non-terminal ACTIVE status exists so resolveStatusForOutcome always finds
// a landing status for successful non-terminal actions.
func initBuiltinStatuses() []StatusSeed {
	return []StatusSeed{
		{
			StatusCode:   "ACTIVE",
			DisplayLabel: "Active",
			OutcomeType:  models.OutcomeActive,
			IsTerminal:   false,
			SortOrder:    1,
			ActionCode:   "ACTIVATE",
		},
		{
			StatusCode:   "ON_HOLD",
			DisplayLabel: "On Hold",
			OutcomeType:  models.OutcomeHold,
			IsTerminal:   false,
			SortOrder:    2,
			ActionCode:   "HOLD",
		},
		{
			StatusCode:   "HIRED",
			DisplayLabel: "Hired",
			OutcomeType:  models.OutcomeSuccess,
			IsTerminal:   true,
			SortOrder:    3,
			ActionCode:   "HIRE",
		},
		{
			StatusCode:   "REJECTED",
			DisplayLabel: "Rejected",
			OutcomeType:  models.OutcomeFailure,
			IsTerminal:   true,
			SortOrder:    4,
			ActionCode:   "REJECT",
		},
		{
			StatusCode:   "WITHDRAWN",
			DisplayLabel: "Withdrawn",
			OutcomeType:  models.OutcomeNeutral,
			IsTerminal:   true,
			SortOrder:    5,
			ActionCode:   "WITHDRAW",
		},
	}
}

// initBuiltinCapabilities returns the default role capability matrix.
// Owners and admins hold every capability; the wildcard feedback grant
// covers feedback:view, feedback:manage and any future feedback:* entries.
func initBuiltinCapabilities() map[models.Role][]string {
	all := []string{
		models.CapabilityAdvanceStage,
		models.CapabilityTerminateApplication,
		models.CapabilityChangeStatus,
		models.CapabilityProvideFeedback,
		models.CapabilityViewTracking,
		models.CapabilityManageSettings,
		models.CapabilityOverrideFlow,
		models.CapabilityFeedbackAll,
	}
	return map[models.Role][]string{
		models.RoleOwner: all,
		models.RoleAdmin: all,
		models.RoleHiringManager: {
			models.CapabilityAdvanceStage,
			models.CapabilityTerminateApplication,
			models.CapabilityChangeStatus,
			models.CapabilityProvideFeedback,
			models.CapabilityViewTracking,
			models.CapabilityFeedbackAll,
		},
		models.RoleRecruiter: {
			models.CapabilityAdvanceStage,
			models.CapabilityProvideFeedback,
			models.CapabilityViewTracking,
			models.CapabilityFeedbackManage,
		},
		models.RoleInterviewer: {
			models.CapabilityProvideFeedback,
		},
	}
}
