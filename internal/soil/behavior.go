package soil

import (
	"cropadvisor/domain/advisory"
	"cropadvisor/domain/agro"
)

// NDVI bounds for the vegetation-driven behavior rules.
const (
	ndviResponsive = 0.45
	ndviStressed   = 0.30
)

// BehaviorInput bundles the signals the behavior rules read.
type BehaviorInput struct {
	Health advisory.SoilHealth
	NDVI   float64
	Zone   agro.Zone
}

// behaviorRule pairs a predicate with the behavior it selects.
type behaviorRule struct {
	when func(in BehaviorInput) bool
	then advisory.SoilBehavior
}

// Rule order is load-bearing: evaluation stops at the first match, so the
// vegetation rules shadow the zone rules.
var behaviorRules = []behaviorRule{
	{
		// Strong vegetation but low nutrients: the soil responds to input
		// while its reserves run down.
		when: func(in BehaviorInput) bool {
			return in.NDVI > ndviResponsive && in.Health.Nitrogen == advisory.BandLow
		},
		then: advisory.BehaviorResponsiveDepleting,
	},
	{
		// Weak vegetation despite medium nutrients points at moisture or
		// retention trouble, not fertility.
		when: func(in BehaviorInput) bool {
			return in.NDVI < ndviStressed && in.Health.Nitrogen == advisory.BandMedium
		},
		then: advisory.BehaviorMoistureStressed,
	},
	{
		when: func(in BehaviorInput) bool { return in.Zone == agro.ZoneDry },
		then: advisory.BehaviorLowRetention,
	},
	{
		when: func(in BehaviorInput) bool { return in.Zone == agro.ZoneDelta },
		then: advisory.BehaviorHighRetention,
	},
}

// InferBehavior classifies the soil's nutrient/moisture dynamics by ordered
// first-match-wins rule evaluation. Unmatched inputs are BALANCED.
func InferBehavior(in BehaviorInput) advisory.SoilBehavior {
	for _, rule := range behaviorRules {
		if rule.when(in) {
			return rule.then
		}
	}
	return advisory.BehaviorBalanced
}
