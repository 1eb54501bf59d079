package advisory

// FeatureVector is one ephemeral model input row: feature name to value,
// split by kind. It must cover every feature the model was trained on;
// the builder fills gaps with documented defaults before prediction.
type FeatureVector struct {
	Numeric     map[string]float64
	Categorical map[string]string
}

// NewFeatureVector returns an empty vector with both maps allocated.
func NewFeatureVector() FeatureVector {
	return FeatureVector{
		Numeric:     make(map[string]float64),
		Categorical: make(map[string]string),
	}
}
