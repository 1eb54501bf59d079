package advisory

import (
	"time"

	"cropadvisor/domain/refdata"
)

// InferSeason maps the calendar month to the cropping season:
// Jun-Sep is Kharif, Oct-Jan is Rabi, the rest is Summer.
func InferSeason(t time.Time) Season {
	switch t.Month() {
	case time.June, time.July, time.August, time.September:
		return SeasonKharif
	case time.October, time.November, time.December, time.January:
		return SeasonRabi
	default:
		return SeasonSummer
	}
}

// NDVIColumn selects which NDVI variant of the reference dataset the season
// should average over.
func NDVIColumn(s Season) string {
	switch s {
	case SeasonKharif:
		return refdata.ColNDVIKharif
	case SeasonRabi:
		return refdata.ColNDVIRabi
	default:
		return refdata.ColNDVIMean
	}
}
