package soil

import (
	"cropadvisor/domain/advisory"
	"cropadvisor/domain/refdata"
)

// Default nutrient means (kg/ha) used when the reference subset has no
// usable values for a column. Tests assert on these directly.
const (
	DefaultNitrogen   = 40.0
	DefaultPhosphorus = 30.0
	DefaultPotassium  = 30.0
)

// Banding thresholds per nutrient: below the first bound is LOW, below the
// second is MEDIUM, anything else is HIGH.
const (
	nitrogenLow    = 30.0
	nitrogenHigh   = 60.0
	phosphorusLow  = 20.0
	phosphorusHigh = 50.0
	potassiumLow   = 20.0
	potassiumHigh  = 50.0
)

func bandValue(x, low, high float64) advisory.NutrientBand {
	switch {
	case x < low:
		return advisory.BandLow
	case x < high:
		return advisory.BandMedium
	default:
		return advisory.BandHigh
	}
}

func meanOrDefault(rows *refdata.View, col string, fallback float64) float64 {
	if rows != nil {
		if mean, ok := rows.Mean(col); ok {
			return mean
		}
	}
	return fallback
}

// EstimateHealth derives banded soil health from nearby historical soil
// statistics. Pure function: missing columns are absorbed by defaults, it
// never fails.
func EstimateHealth(rows *refdata.View) advisory.SoilHealth {
	health := advisory.SoilHealth{
		Nitrogen:   bandValue(meanOrDefault(rows, refdata.ColNitrogen, DefaultNitrogen), nitrogenLow, nitrogenHigh),
		Phosphorus: bandValue(meanOrDefault(rows, refdata.ColPhosphorus, DefaultPhosphorus), phosphorusLow, phosphorusHigh),
		Potassium:  bandValue(meanOrDefault(rows, refdata.ColPotassium, DefaultPotassium), potassiumLow, potassiumHigh),
	}
	health.Overall = overallRating(health)
	return health
}

func overallRating(h advisory.SoilHealth) advisory.SoilRating {
	bands := []advisory.NutrientBand{h.Nitrogen, h.Phosphorus, h.Potassium}
	for _, b := range bands {
		if b == advisory.BandLow {
			return advisory.SoilPoor
		}
	}
	for _, b := range bands {
		if b == advisory.BandMedium {
			return advisory.SoilModerate
		}
	}
	return advisory.SoilGood
}

// EstimatedNitrogen converts the nitrogen band back into a conservative
// numeric estimate (kg/ha), used only for fertilizer rule matching.
func EstimatedNitrogen(h advisory.SoilHealth) float64 {
	switch h.Nitrogen {
	case advisory.BandLow:
		return 25
	case advisory.BandHigh:
		return 40
	default:
		return 30
	}
}
