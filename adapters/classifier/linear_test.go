package classifier

import (
	"math"
	"testing"

	"cropadvisor/domain/advisory"
	"cropadvisor/internal/errors"
)

const testArtifact = `{
	"classes": ["paddy", "millet", "groundnut"],
	"features": ["District", "Season", "ndvi_kharif_mean", "Nitrogen"],
	"cat_features": ["District", "Season"],
	"intercepts": [0.2, 0.1, 0.0],
	"weights": [
		{"ndvi_kharif_mean": 2.0, "Nitrogen": 0.01},
		{"ndvi_kharif_mean": -1.0, "Nitrogen": 0.02},
		{"ndvi_kharif_mean": 0.5, "Nitrogen": 0.0}
	],
	"cat_weights": [
		{"District": {"thanjavur": 1.5}, "Season": {"kharif": 0.3}},
		{"District": {"salem": 1.0}, "Season": {}},
		{"District": {}, "Season": {"summer": 0.4}}
	],
	"feature_importance": {
		"ndvi_kharif_mean": 41.0,
		"District": 32.5,
		"Season": 12.0,
		"Nitrogen": 8.0
	}
}`

func loadTestModel(t *testing.T) *Linear {
	t.Helper()
	model, err := FromJSON([]byte(testArtifact))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	return model
}

func TestSchemaAndClasses(t *testing.T) {
	model := loadTestModel(t)

	classes := model.Classes()
	if len(classes) != 3 || classes[0] != "paddy" {
		t.Errorf("Classes() = %v", classes)
	}

	schema := model.Schema()
	if len(schema.Features) != 4 {
		t.Errorf("schema has %d features, want 4", len(schema.Features))
	}
	if !schema.IsCategorical("District") || !schema.IsCategorical("Season") {
		t.Error("District and Season must be categorical")
	}
	if schema.IsCategorical("Nitrogen") {
		t.Error("Nitrogen must be numeric")
	}
}

func TestPredictProbaIsDistribution(t *testing.T) {
	model := loadTestModel(t)

	fv := advisory.NewFeatureVector()
	fv.Categorical["District"] = "Thanjavur"
	fv.Categorical["Season"] = "Kharif"
	fv.Numeric["ndvi_kharif_mean"] = 0.5
	fv.Numeric["Nitrogen"] = 40

	probs, err := model.PredictProba(fv)
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if len(probs) != 3 {
		t.Fatalf("got %d probabilities, want 3", len(probs))
	}

	sum := 0.0
	for _, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("probability out of range: %v", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}

	// Thanjavur in kharif strongly favors paddy in this artifact.
	if !(probs[0] > probs[1] && probs[0] > probs[2]) {
		t.Errorf("expected paddy dominant, got %v", probs)
	}
}

func TestPredictProbaUnknownCategory(t *testing.T) {
	model := loadTestModel(t)

	fv := advisory.NewFeatureVector()
	fv.Categorical["District"] = "somewhere-new"
	fv.Categorical["Season"] = "Kharif"
	fv.Numeric["ndvi_kharif_mean"] = 0.4

	probs, err := model.PredictProba(fv)
	if err != nil {
		t.Fatalf("unknown category must not fail prediction: %v", err)
	}
	if len(probs) != 3 {
		t.Fatalf("got %d probabilities, want 3", len(probs))
	}
}

func TestFeatureImportanceSorted(t *testing.T) {
	model := loadTestModel(t)

	imp := model.FeatureImportance()
	if len(imp) != 4 {
		t.Fatalf("got %d importances, want 4", len(imp))
	}
	if imp[0].Feature != "ndvi_kharif_mean" {
		t.Errorf("top factor = %q, want ndvi_kharif_mean", imp[0].Feature)
	}
	for i := 1; i < len(imp); i++ {
		if imp[i].Importance > imp[i-1].Importance {
			t.Errorf("importances not sorted at %d: %v", i, imp)
		}
	}
}

func TestFromJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"no classes", `{"classes": [], "features": ["a"]}`},
		{"no features", `{"classes": ["paddy"], "features": []}`},
		{"misaligned intercepts", `{"classes": ["a", "b"], "features": ["f"], "intercepts": [0.1]}`},
		{"misaligned weights", `{"classes": ["a", "b"], "features": ["f"], "weights": [{}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if errors.GetCode(err) != errors.CodeModelLoad {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.CodeModelLoad)
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("no/such/model.json"); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
