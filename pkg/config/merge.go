package config

import (
	"sort"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// mergeStatusSeeds merges built-in and user-defined status seeds.
// User-defined seeds override built-in seeds with the same status code; new
// codes are appended. The result is ordered by sort_order so seeding creates
// rows in catalog order.
func mergeStatusSeeds(builtin []StatusSeed, user []StatusSeed) []StatusSeed {
	byCode := make(map[string]int, len(builtin))
	result := make([]StatusSeed, 0, len(builtin)+len(user))

	// First, add built-in seeds
	for _, seed := range builtin {
		byCode[seed.StatusCode] = len(result)
		result = append(result, seed)
	}

	// Then, override with user-defined seeds (or add new ones)
	for _, seed := range user {
		if idx, ok := byCode[seed.StatusCode]; ok {
			result[idx] = seed
			continue
		}
		byCode[seed.StatusCode] = len(result)
		result = append(result, seed)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})

	return result
}

// mergeCapabilities merges built-in and user-defined capability grants.
// A user-defined role replaces the built-in grant list for that role
// entirely, so tenants can narrow as well as widen a role.
func mergeCapabilities(builtin map[models.Role][]string, user map[models.Role][]string) map[models.Role][]string {
	result := make(map[models.Role][]string, len(builtin))

	// First, copy built-in grants (slices are copied, not aliased)
	for role, caps := range builtin {
		capsCopy := make([]string, len(caps))
		copy(capsCopy, caps)
		result[role] = capsCopy
	}

	// Then, override with user-defined grants (or add new roles)
	for role, caps := range user {
		capsCopy := make([]string, len(caps))
		copy(capsCopy, caps)
		result[role] = capsCopy
	}

	return result
}
