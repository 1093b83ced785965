package entity

type PlatformPlan string

const (
	PlatformPlanFree       PlatformPlan = "FREE"
	PlatformPlanStarter    PlatformPlan = "STARTER"
	PlatformPlanEssentials PlatformPlan = "ESSENTIALS"
	PlatformPlanScale      PlatformPlan = "SCALE"
	PlatformPlanEnterprise PlatformPlan = "ENTERPRISE"
)

var planRanks = map[PlatformPlan]int{
	PlatformPlanFree:       0,
	PlatformPlanStarter:    1,
	PlatformPlanEssentials: 2,
	PlatformPlanScale:      3,
	PlatformPlanEnterprise: 4,
}

// Includes reports whether p is the same tier as required or above it.
// Unknown plans include nothing.
func (p PlatformPlan) Includes(required PlatformPlan) bool {
	have, ok := planRanks[p]
	if !ok {
		return false
	}
	return have >= planRanks[required]
}
