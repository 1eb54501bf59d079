package advisor

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"cropadvisor/domain/advisory"
	"cropadvisor/domain/agro"
	"cropadvisor/domain/refdata"
	"cropadvisor/internal/errors"
	"cropadvisor/internal/location"
	"cropadvisor/internal/rules"
	"cropadvisor/internal/soil"
	"cropadvisor/ports"
)

// TopK is how many crops a prediction ranks.
const TopK = 3

// DefaultNDVI is the value used when no NDVI statistics exist anywhere in
// the dataset. Zero sits below the safe-mode floor, so a totally blind
// prediction always carries the caution flag.
const DefaultNDVI = 0.0

// Trust descriptors derived from the fallback level.
const (
	trustRadiusDistrict = 30
	trustRadiusFallback = 60
)

// Advisor is the inference-time orchestrator: it fuses classifier output
// with agro-climatic rules, confidence policy and fallback-driven trust
// scoring into one structured advisory. All referenced tables are loaded
// once at startup and immutable, so an Advisor is safe for concurrent use.
type Advisor struct {
	frame      *refdata.Frame
	classifier ports.CropClassifier
	resolver   *location.Resolver
	market     *rules.MarketEngine
	homeState  string
	now        func() time.Time
}

// Option customizes an Advisor.
type Option func(*Advisor)

// WithClock overrides the time source, used by tests to pin the season.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) { a.now = now }
}

// WithHomeState sets the state key used for the STATE fallback subset.
func WithHomeState(state string) Option {
	return func(a *Advisor) { a.homeState = state }
}

// New creates an advisor over preloaded reference data and a trained model.
func New(frame *refdata.Frame, classifier ports.CropClassifier, resolver *location.Resolver, market *rules.MarketEngine, opts ...Option) *Advisor {
	a := &Advisor{
		frame:      frame,
		classifier: classifier,
		resolver:   resolver,
		market:     market,
		homeState:  "tamil nadu",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Predict runs the full advisory pipeline for one place name. It degrades
// instead of failing: a district with no data broadens the reference scope
// and lowers the trust descriptor, missing values fall back to documented
// defaults. The only error paths are an empty input and a classifier fault.
func (a *Advisor) Predict(ctx context.Context, req advisory.PredictionRequest) (*advisory.PredictionResult, error) {
	_ = ctx

	input := strings.TrimSpace(req.District)
	if input == "" {
		return nil, errors.InvalidInput("district is required")
	}

	district, method := a.resolver.Resolve(input)
	season := advisory.InferSeason(a.now())

	// Fallback escalation is one-directional: district, then state subset,
	// then the whole dataset. No retries.
	view := a.frame.ByDistrict(district)
	level := advisory.FallbackDistrict
	if view.Empty() {
		level = advisory.FallbackState
		view = a.frame.ByState(a.homeState)
	}
	if view.Empty() {
		level = advisory.FallbackGlobal
		view = a.frame.All()
	}

	ndviCol := advisory.NDVIColumn(season)
	ndvi, ok := view.Mean(ndviCol)
	if !ok {
		ndvi, ok = a.frame.All().Mean(ndviCol)
	}
	if !ok {
		ndvi = DefaultNDVI
	}

	fv := a.buildFeatures(view, input, season, ndviCol, ndvi)

	probs, err := a.classifier.PredictProba(fv)
	if err != nil {
		return nil, errors.Wrap(err, "classifier prediction failed")
	}
	classes := a.classifier.Classes()
	if len(classes) == 0 || len(classes) != len(probs) {
		return nil, errors.InternalError("classifier returned inconsistent class probabilities")
	}

	topCrops, topProbs := rankTop(classes, probs, TopK)

	zone := agro.DistrictZone(district)
	topCrops, topProbs = Diversify(topCrops, topProbs, zone)

	p2 := 0.0
	if len(topProbs) > 1 {
		p2 = topProbs[1]
	}
	band := ConfidenceBand(topProbs[0], p2)
	safe := SafeMode(band, ndvi)

	health := soil.EstimateHealth(view)
	behavior := soil.InferBehavior(soil.BehaviorInput{Health: health, NDVI: ndvi, Zone: zone})

	fertilizer := rules.RecommendFertilizer(topCrops[0], behavior)
	market := a.market.Info(topCrops[0], zone)

	trust := advisory.TrustDescriptor{
		Source:   level,
		Trust:    advisory.ConfidenceMedium,
		RadiusKm: trustRadiusDistrict,
	}
	if level != advisory.FallbackDistrict {
		trust.Trust = advisory.ConfidenceLow
		trust.RadiusKm = trustRadiusFallback
	}

	return &advisory.PredictionResult{
		RequestID:   uuid.NewString(),
		GeneratedAt: a.now(),

		TopCrops:      topCrops,
		TopProbs:      roundAll(topProbs),
		TopConfidence: band,
		SafeMode:      safe,

		SoilHealth:   health,
		SoilBehavior: behavior,

		Fertilizer: fertilizer,
		Market:     market,

		FallbackLevel: level,
		Season:        season,
		NDVI:          round3(ndvi),
		Zone:          zone,

		Trust: trust,
		Reasoning: map[string]string{
			"ml_role":         "Primary crop suitability ranking",
			"zone_role":       fmt.Sprintf("Risk-aware adjustment using %s agro-climatic zone", zone),
			"soil_role":       "Soil behavior inferred from nutrients and vegetation",
			"fertilizer_role": "Conservative agronomy rules (not ML)",
			"market_role":     "Awareness only, no price prediction",
			"fallback_role":   fmt.Sprintf("%s data used to avoid false precision", level),
		},
		Location: advisory.LocationResolution{
			Input:            input,
			ResolvedDistrict: district,
			Method:           method,
		},
	}, nil
}

// buildFeatures populates the model's full schema from subset aggregates,
// then applies the request-derived overrides: district (the raw input, as
// the model was trained), season, and the season's NDVI column.
func (a *Advisor) buildFeatures(view *refdata.View, input string, season advisory.Season, ndviCol string, ndvi float64) advisory.FeatureVector {
	schema := a.classifier.Schema()
	fv := advisory.NewFeatureVector()

	for _, f := range schema.Features {
		if schema.IsCategorical(f) {
			if mode, ok := view.Mode(f); ok {
				fv.Categorical[f] = mode
			} else {
				fv.Categorical[f] = ""
			}
		} else {
			if mean, ok := view.Mean(f); ok {
				fv.Numeric[f] = mean
			} else {
				fv.Numeric[f] = 0.0
			}
		}
	}

	fv.Categorical[refdata.ColDistrict] = input
	fv.Categorical[refdata.ColSeason] = string(season)
	fv.Numeric[ndviCol] = ndvi
	return fv
}

// rankTop returns the k highest-probability classes, probability descending.
func rankTop(classes []string, probs []float64, k int) ([]string, []float64) {
	sorted := append([]float64(nil), probs...)
	inds := make([]int, len(sorted))
	floats.Argsort(sorted, inds)

	if k > len(classes) {
		k = len(classes)
	}
	topCrops := make([]string, 0, k)
	topProbs := make([]float64, 0, k)
	for i := len(inds) - 1; i >= len(inds)-k; i-- {
		topCrops = append(topCrops, classes[inds[i]])
		topProbs = append(topProbs, sorted[i])
	}
	return topCrops, topProbs
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = round3(x)
	}
	return out
}
