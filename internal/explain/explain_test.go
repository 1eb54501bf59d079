package explain

import (
	"strings"
	"testing"

	"cropadvisor/domain/advisory"
	"cropadvisor/domain/agro"
	"cropadvisor/ports"
)

func sampleResult() *advisory.PredictionResult {
	return &advisory.PredictionResult{
		TopCrops:      []string{"paddy", "millet", "groundnut"},
		TopProbs:      []float64{0.5, 0.3, 0.2},
		TopConfidence: advisory.ConfidenceMedium,
		Season:        advisory.SeasonKharif,
		NDVI:          0.421,
		Zone:          agro.ZoneDelta,
		SoilBehavior:  advisory.BehaviorBalanced,
		FallbackLevel: advisory.FallbackDistrict,
		Fertilizer:    advisory.FertilizerAdvice{Fertilizer: "Urea", RateKgAcre: 25},
		Market:        advisory.MarketAdvice{Market: "Thanjavur"},
	}
}

func sampleImportance() []ports.FeatureWeight {
	return []ports.FeatureWeight{
		{Feature: "ndvi_kharif_mean", Importance: 41},
		{Feature: "District", Importance: 32},
		{Feature: "Season", Importance: 12},
		{Feature: "Nitrogen", Importance: 8},
	}
}

func TestExplainTopFactorsCapped(t *testing.T) {
	exp := Explain(sampleResult(), sampleImportance())

	want := []string{"ndvi_kharif_mean", "District", "Season"}
	if len(exp.TopFactors) != len(want) {
		t.Fatalf("TopFactors = %v, want 3 entries", exp.TopFactors)
	}
	for i, f := range want {
		if exp.TopFactors[i] != f {
			t.Errorf("TopFactors[%d] = %q, want %q", i, exp.TopFactors[i], f)
		}
	}
}

func TestExplainReasons(t *testing.T) {
	exp := Explain(sampleResult(), sampleImportance())

	joined := strings.Join(exp.Reasons, "\n")
	for _, fragment := range []string{
		"ranked paddy highest",
		"DELTA agro-climatic zone",
		"Soil behaved as BALANCED",
		"25 kg/acre",
		"Market reference Thanjavur",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("reasons missing %q:\n%s", fragment, joined)
		}
	}
	if strings.Contains(joined, "Safe mode") {
		t.Error("safe-mode caution must not appear for a confident result")
	}
	if exp.FallbackLevel != advisory.FallbackDistrict {
		t.Errorf("FallbackLevel = %q", exp.FallbackLevel)
	}
	if !strings.Contains(exp.SystemNote, "DISTRICT-level") {
		t.Errorf("SystemNote = %q", exp.SystemNote)
	}
}

func TestExplainSafeModeCaution(t *testing.T) {
	res := sampleResult()
	res.SafeMode = true

	exp := Explain(res, sampleImportance())
	if !exp.SafeMode {
		t.Error("SafeMode flag not carried")
	}

	last := exp.Reasons[len(exp.Reasons)-1]
	if !strings.Contains(last, "Safe mode is on") {
		t.Errorf("missing safe-mode caution, last reason: %q", last)
	}
}

func TestExplainUnknownZone(t *testing.T) {
	res := sampleResult()
	res.Zone = agro.ZoneUnknown

	exp := Explain(res, nil)
	joined := strings.Join(exp.Reasons, "\n")
	if !strings.Contains(joined, "outside the mapped agro-climatic zones") {
		t.Errorf("missing unmapped-zone reason:\n%s", joined)
	}
	if len(exp.TopFactors) != 0 {
		t.Errorf("TopFactors without importances = %v, want empty", exp.TopFactors)
	}
}
