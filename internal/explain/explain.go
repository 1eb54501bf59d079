package explain

import (
	"fmt"

	"cropadvisor/domain/advisory"
	"cropadvisor/ports"
)

// Explanation is the structured "why" for one prediction, built entirely
// from the result and the model's global feature importances. Deterministic:
// no per-prediction attribution is computed.
type Explanation struct {
	TopFactors    []string               `json:"top_factors"`
	Reasons       []string               `json:"reasons"`
	SafeMode      bool                   `json:"safe_mode"`
	FallbackLevel advisory.FallbackLevel `json:"fallback_level"`
	SystemNote    string                 `json:"system_note"`
}

// Explain assembles the farmer-facing reasoning for one result.
func Explain(res *advisory.PredictionResult, importance []ports.FeatureWeight) Explanation {
	exp := Explanation{
		SafeMode:      res.SafeMode,
		FallbackLevel: res.FallbackLevel,
		SystemNote: fmt.Sprintf(
			"Decision used %s-level agronomic statistics, satellite vegetation trends, "+
				"seasonal patterns, and agro-climatic zone bias.", res.FallbackLevel),
	}

	for i, w := range importance {
		if i == 3 {
			break
		}
		exp.TopFactors = append(exp.TopFactors, w.Feature)
	}

	exp.Reasons = append(exp.Reasons,
		fmt.Sprintf("The trained model ranked %s highest for %s conditions with %s confidence.",
			res.TopCrops[0], res.Season, res.TopConfidence))
	if res.Zone.Known() {
		exp.Reasons = append(exp.Reasons,
			fmt.Sprintf("Ranking was adjusted for the %s agro-climatic zone's crop tendencies.", res.Zone))
	} else {
		exp.Reasons = append(exp.Reasons,
			"The district is outside the mapped agro-climatic zones, so no zone adjustment was applied.")
	}
	exp.Reasons = append(exp.Reasons,
		fmt.Sprintf("Soil behaved as %s based on nutrient bands and a vegetation index of %.3f.",
			res.SoilBehavior, res.NDVI))
	exp.Reasons = append(exp.Reasons,
		fmt.Sprintf("Fertilizer guidance (%s, %d kg/acre) comes from conservative agronomy rules, not the model.",
			res.Fertilizer.Fertilizer, res.Fertilizer.RateKgAcre))
	exp.Reasons = append(exp.Reasons,
		fmt.Sprintf("Market reference %s is shown for awareness only.", res.Market.Market))
	if res.SafeMode {
		exp.Reasons = append(exp.Reasons,
			"Safe mode is on: vegetation or confidence signals show uncertainty, prefer low-risk crops "+
				"and consult local agricultural officers before major changes.")
	}

	return exp
}
