// Package testkit provides fixtures for the advisory pipeline tests: small
// reference frames, a stub classifier, and in-memory village/market tables.
package testkit

import (
	"strings"

	"cropadvisor/domain/advisory"
	"cropadvisor/domain/refdata"
	"cropadvisor/ports"
)

// ReferenceColumns is the canonical header of the fixture dataset.
var ReferenceColumns = []string{
	refdata.ColDistrict,
	refdata.ColState,
	refdata.ColSeason,
	refdata.ColCrop,
	refdata.ColNitrogen,
	refdata.ColPhosphorus,
	refdata.ColPotassium,
	refdata.ColNDVIMean,
	refdata.ColNDVIKharif,
	refdata.ColNDVIRabi,
}

// Frame builds a reference frame from explicit rows over ReferenceColumns.
func Frame(rows ...[]string) *refdata.Frame {
	return refdata.NewFrame(ReferenceColumns, rows)
}

// Row builds one fixture row in ReferenceColumns order.
func Row(district, state, season, crop, n, p, k, ndvi, ndviKharif, ndviRabi string) []string {
	return []string{district, state, season, crop, n, p, k, ndvi, ndviKharif, ndviRabi}
}

// StubClassifier is a canned ports.CropClassifier. It records the last
// feature vector it was asked to score.
type StubClassifier struct {
	ClassList  []string
	Probs      []float64
	Err        error
	FS         ports.FeatureSchema
	Importance []ports.FeatureWeight

	LastVector advisory.FeatureVector
	Calls      int
}

// NewStubClassifier returns a stub over the given classes and fixed
// probabilities, with a minimal District/Season/NDVI schema.
func NewStubClassifier(classes []string, probs []float64) *StubClassifier {
	return &StubClassifier{
		ClassList: classes,
		Probs:     probs,
		FS: ports.FeatureSchema{
			Features: []string{refdata.ColDistrict, refdata.ColSeason, refdata.ColNDVIKharif},
			Categorical: map[string]bool{
				refdata.ColDistrict: true,
				refdata.ColSeason:   true,
			},
		},
	}
}

func (s *StubClassifier) Schema() ports.FeatureSchema { return s.FS }

func (s *StubClassifier) Classes() []string { return s.ClassList }

func (s *StubClassifier) FeatureImportance() []ports.FeatureWeight { return s.Importance }

func (s *StubClassifier) PredictProba(fv advisory.FeatureVector) ([]float64, error) {
	s.LastVector = fv
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]float64(nil), s.Probs...), nil
}

// StaticVillages is an in-memory village index.
type StaticVillages map[string]string

func (v StaticVillages) District(village string) (string, bool) {
	d, ok := v[village]
	return d, ok
}

// StaticMarkets is an in-memory market directory.
type StaticMarkets []ports.MarketRow

func (m StaticMarkets) FindByCrop(crop string) (ports.MarketRow, bool) {
	for _, row := range m {
		if strings.EqualFold(row.Crop, crop) {
			return row, true
		}
	}
	return ports.MarketRow{}, false
}
