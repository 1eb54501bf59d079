package rules

import "cropadvisor/domain/advisory"

// fertilizerRule maps one soil behavior to a fixed guidance row.
type fertilizerRule struct {
	behavior advisory.SoilBehavior
	advice   advisory.FertilizerAdvice
}

var fertilizerRules = []fertilizerRule{
	{
		behavior: advisory.BehaviorMoistureStressed,
		advice: advisory.FertilizerAdvice{
			Status:     "OK",
			Fertilizer: "Urea",
			RateKgAcre: 20,
			Logic:      "Lower dose due to moisture stress",
		},
	},
	{
		behavior: advisory.BehaviorLowRetention,
		advice: advisory.FertilizerAdvice{
			Status:     "OK",
			Fertilizer: "DAP",
			RateKgAcre: 25,
			Logic:      "Phosphorus support for weak retention soils",
		},
	},
	{
		behavior: advisory.BehaviorResponsiveDepleting,
		advice: advisory.FertilizerAdvice{
			Status:     "OK",
			Fertilizer: "Urea",
			RateKgAcre: 30,
			Logic:      "Soil shows response but nutrients depleting",
		},
	},
}

var fertilizerDefault = advisory.FertilizerAdvice{
	Status:     "OK",
	Fertilizer: "Urea",
	RateKgAcre: 25,
	Logic:      "Maintenance dose only",
}

// RecommendFertilizer returns conservative rule-based fertilizer guidance.
// Total over its domain: unmatched behaviors get the maintenance default.
// The crop argument does not vary the outcome today; it stays in the
// signature so crop-specific dosing can land without an interface change.
func RecommendFertilizer(crop string, behavior advisory.SoilBehavior) advisory.FertilizerAdvice {
	_ = crop
	for _, rule := range fertilizerRules {
		if rule.behavior == behavior {
			return rule.advice
		}
	}
	return fertilizerDefault
}
