// Package classifier loads the trained-model artifact exported by the
// training pipeline and serves in-process probability predictions.
package classifier

import (
	"encoding/json"
	"math"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"cropadvisor/domain/advisory"
	"cropadvisor/internal/errors"
	"cropadvisor/ports"
)

// artifact mirrors the JSON the training side exports: class labels in a
// stable order, the feature schema, and linear scoring weights per class.
// Categorical features carry one weight per observed category value.
type artifact struct {
	Classes     []string                        `json:"classes"`
	Features    []string                        `json:"features"`
	CatFeatures []string                        `json:"cat_features"`
	Intercepts  []float64                       `json:"intercepts"`
	Weights     []map[string]float64            `json:"weights"`
	CatWeights  []map[string]map[string]float64 `json:"cat_weights"`
	Importance  map[string]float64              `json:"feature_importance"`
}

// Linear is a softmax-linear crop classifier backed by an exported model
// artifact. Immutable after load, safe for concurrent use.
type Linear struct {
	art        artifact
	schema     ports.FeatureSchema
	importance []ports.FeatureWeight
}

// LoadFromFile reads and validates a model artifact. Any failure here is a
// fatal startup error: there is no inference without a model.
func LoadFromFile(path string) (*Linear, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModelLoadError("failed to read model artifact", err)
	}
	return FromJSON(raw)
}

// FromJSON builds a classifier from raw artifact bytes.
func FromJSON(raw []byte) (*Linear, error) {
	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, errors.ModelLoadError("failed to parse model artifact", err)
	}
	if len(art.Classes) == 0 {
		return nil, errors.ModelLoadError("model artifact declares no classes", nil)
	}
	if len(art.Features) == 0 {
		return nil, errors.ModelLoadError("model artifact declares no features", nil)
	}
	if len(art.Intercepts) != 0 && len(art.Intercepts) != len(art.Classes) {
		return nil, errors.ModelLoadError("intercepts do not align with classes", nil)
	}
	if len(art.Weights) != 0 && len(art.Weights) != len(art.Classes) {
		return nil, errors.ModelLoadError("weights do not align with classes", nil)
	}
	if len(art.CatWeights) != 0 && len(art.CatWeights) != len(art.Classes) {
		return nil, errors.ModelLoadError("categorical weights do not align with classes", nil)
	}

	schema := ports.FeatureSchema{
		Features:    append([]string(nil), art.Features...),
		Categorical: make(map[string]bool, len(art.CatFeatures)),
	}
	for _, f := range art.CatFeatures {
		schema.Categorical[f] = true
	}

	importance := make([]ports.FeatureWeight, 0, len(art.Importance))
	for f, imp := range art.Importance {
		importance = append(importance, ports.FeatureWeight{Feature: f, Importance: imp})
	}
	sort.Slice(importance, func(i, j int) bool {
		if importance[i].Importance != importance[j].Importance {
			return importance[i].Importance > importance[j].Importance
		}
		return importance[i].Feature < importance[j].Feature
	})

	return &Linear{art: art, schema: schema, importance: importance}, nil
}

// Schema returns the feature contract the model was trained on.
func (l *Linear) Schema() ports.FeatureSchema {
	return l.schema
}

// Classes returns the class labels in artifact order.
func (l *Linear) Classes() []string {
	return append([]string(nil), l.art.Classes...)
}

// FeatureImportance returns global importances, highest first.
func (l *Linear) FeatureImportance() []ports.FeatureWeight {
	return append([]ports.FeatureWeight(nil), l.importance...)
}

// PredictProba scores the vector per class and normalizes with a softmax.
// Unknown categorical values score zero weight; the prediction still
// succeeds, matching the degrade-gracefully contract.
func (l *Linear) PredictProba(fv advisory.FeatureVector) ([]float64, error) {
	scores := make([]float64, len(l.art.Classes))
	for ci := range l.art.Classes {
		s := 0.0
		if ci < len(l.art.Intercepts) {
			s = l.art.Intercepts[ci]
		}
		if ci < len(l.art.Weights) {
			for f, w := range l.art.Weights[ci] {
				s += w * fv.Numeric[f]
			}
		}
		if ci < len(l.art.CatWeights) {
			for f, values := range l.art.CatWeights[ci] {
				if v, ok := fv.Categorical[f]; ok {
					s += values[strings.ToLower(strings.TrimSpace(v))]
				}
			}
		}
		scores[ci] = s
	}
	return softmax(scores), nil
}

func softmax(scores []float64) []float64 {
	max := floats.Max(scores)
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s - max)
	}
	total := floats.Sum(out)
	floats.Scale(1/total, out)
	return out
}
