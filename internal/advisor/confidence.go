package advisor

import "cropadvisor/domain/advisory"

// Probability-margin bounds for the confidence bands, plus the NDVI floor
// below which safe mode always engages.
const (
	MarginHigh   = 0.25
	MarginMedium = 0.12
	SafeModeNDVI = 0.28
)

// ConfidenceBand grades the gap between the top two class probabilities.
// Boundary values land in the higher band.
func ConfidenceBand(p1, p2 float64) advisory.ConfidenceBand {
	margin := p1 - p2
	switch {
	case margin >= MarginHigh:
		return advisory.ConfidenceHigh
	case margin >= MarginMedium:
		return advisory.ConfidenceMedium
	default:
		return advisory.ConfidenceLow
	}
}

// SafeMode decides whether the recommendation should carry a caution flag.
// Either trigger fires independently; the flag never changes the ranking.
func SafeMode(band advisory.ConfidenceBand, ndvi float64) bool {
	return band == advisory.ConfidenceLow || ndvi < SafeModeNDVI
}
