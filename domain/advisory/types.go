package advisory

import (
	"time"

	"cropadvisor/domain/agro"
)

// Season is the cropping season inferred from the calendar month.
type Season string

const (
	SeasonKharif Season = "Kharif"
	SeasonRabi   Season = "Rabi"
	SeasonSummer Season = "Summer"
)

// NutrientBand is the qualitative level of a soil nutrient.
type NutrientBand string

const (
	BandLow    NutrientBand = "LOW"
	BandMedium NutrientBand = "MEDIUM"
	BandHigh   NutrientBand = "HIGH"
)

// SoilRating summarizes overall soil health.
type SoilRating string

const (
	SoilPoor     SoilRating = "POOR"
	SoilModerate SoilRating = "MODERATE"
	SoilGood     SoilRating = "GOOD"
)

// SoilHealth carries banded nutrient levels. It is derived per request from
// reference-row aggregates and never persisted.
type SoilHealth struct {
	Nitrogen   NutrientBand `json:"nitrogen"`
	Phosphorus NutrientBand `json:"phosphorus"`
	Potassium  NutrientBand `json:"potassium"`
	Overall    SoilRating   `json:"overall"`
}

// SoilBehavior is a qualitative nutrient/moisture-dynamics category. It
// describes how the soil behaves, not its physical type.
type SoilBehavior string

const (
	BehaviorResponsiveDepleting SoilBehavior = "RESPONSIVE_BUT_DEPLETING"
	BehaviorMoistureStressed    SoilBehavior = "MOISTURE_STRESSED"
	BehaviorLowRetention        SoilBehavior = "LOW_RETENTION"
	BehaviorHighRetention       SoilBehavior = "HIGH_RETENTION"
	BehaviorBalanced            SoilBehavior = "BALANCED"
)

// ConfidenceBand is the qualitative confidence in the top recommendation,
// derived from the probability margin between the top two crops.
type ConfidenceBand string

const (
	ConfidenceHigh   ConfidenceBand = "HIGH"
	ConfidenceMedium ConfidenceBand = "MEDIUM"
	ConfidenceLow    ConfidenceBand = "LOW"
)

// FallbackLevel tags how far the engine broadened its data scope when the
// exact district had no reference rows.
type FallbackLevel string

const (
	FallbackDistrict FallbackLevel = "DISTRICT"
	FallbackState    FallbackLevel = "STATE"
	FallbackGlobal   FallbackLevel = "GLOBAL"
)

// ResolutionMethod records how a place name was mapped to a district.
type ResolutionMethod string

const (
	MethodVillageMatch    ResolutionMethod = "VILLAGE_MATCH"
	MethodDistrictAssumed ResolutionMethod = "DISTRICT_ASSUMED"
)

// FertilizerAdvice is conservative rule-based fertilizer guidance.
type FertilizerAdvice struct {
	Status     string `json:"status"`
	Fertilizer string `json:"fertilizer"`
	RateKgAcre int    `json:"rate_kg_acre"`
	Logic      string `json:"logic"`
}

// MarketAdvice names a nearby high-volume reference market. Awareness only,
// never a selling recommendation.
type MarketAdvice struct {
	Status string `json:"status"`
	Market string `json:"market"`
	Trend  string `json:"trend"`
	Note   string `json:"note"`
}

// TrustDescriptor pairs a qualitative trust level with the approximate
// spatial radius the underlying data is valid for.
type TrustDescriptor struct {
	Source   FallbackLevel  `json:"source"`
	Trust    ConfidenceBand `json:"trust"`
	RadiusKm int            `json:"radius_km"`
}

// LocationResolution records the input place name and how it resolved.
type LocationResolution struct {
	Input            string           `json:"input"`
	ResolvedDistrict string           `json:"resolved_district"`
	Method           ResolutionMethod `json:"method"`
}

// PredictionRequest is the single input of one advisory call.
type PredictionRequest struct {
	District string `json:"district"`
}

// PredictionResult is the complete structured answer for one request.
// Every field is always populated: fallback chains guarantee no subsystem
// returns "no data".
type PredictionResult struct {
	RequestID   string    `json:"request_id"`
	GeneratedAt time.Time `json:"generated_at"`

	TopCrops      []string       `json:"top3_crops"`
	TopProbs      []float64      `json:"top3_probs"`
	TopConfidence ConfidenceBand `json:"top1_confidence"`
	SafeMode      bool           `json:"safe_mode"`

	SoilHealth   SoilHealth   `json:"soil_health"`
	SoilBehavior SoilBehavior `json:"soil_behavior"`

	Fertilizer FertilizerAdvice `json:"fertilizer_guidance"`
	Market     MarketAdvice     `json:"market_awareness"`

	FallbackLevel FallbackLevel `json:"fallback_level"`
	Season        Season        `json:"season"`
	NDVI          float64       `json:"ndvi_value"`
	Zone          agro.Zone     `json:"agro_climatic_zone"`

	Trust     TrustDescriptor    `json:"data_trust_level"`
	Reasoning map[string]string  `json:"decision_reasoning"`
	Location  LocationResolution `json:"location_resolution"`
}
