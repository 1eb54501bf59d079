package ports

import "cropadvisor/domain/advisory"

// FeatureSchema is the fixed input contract of a trained model: the ordered
// feature names and which of them are categorical.
type FeatureSchema struct {
	Features    []string
	Categorical map[string]bool
}

// IsCategorical reports whether the named feature is categorical.
func (s FeatureSchema) IsCategorical(name string) bool {
	return s.Categorical[name]
}

// FeatureWeight is one entry of a model's global importance ranking.
type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// CropClassifier wraps an externally trained multiclass model. The engine
// treats it as opaque: it only needs class labels in a stable order and a
// probability per class for one feature vector.
//
// Implementations must be safe for concurrent use after construction; the
// model artifact is loaded once at startup and never mutated.
type CropClassifier interface {
	Schema() FeatureSchema
	Classes() []string
	PredictProba(fv advisory.FeatureVector) ([]float64, error)

	// FeatureImportance returns global importances sorted descending.
	// Used only by the explanation layer.
	FeatureImportance() []FeatureWeight
}
