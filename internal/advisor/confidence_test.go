package advisor

import (
	"testing"

	"cropadvisor/domain/advisory"
)

func TestConfidenceBand(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 float64
		want   advisory.ConfidenceBand
	}{
		{"wide margin", 0.9, 0.5, advisory.ConfidenceHigh},
		{"moderate margin", 0.5, 0.35, advisory.ConfidenceMedium},
		{"narrow margin", 0.5, 0.45, advisory.ConfidenceLow},
		{"margin exactly at high bound", 0.75, 0.5, advisory.ConfidenceHigh},
		{"margin exactly at medium bound", 0.62, 0.5, advisory.ConfidenceMedium},
		{"below medium bound", 0.6, 0.5, advisory.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfidenceBand(tt.p1, tt.p2); got != tt.want {
				t.Errorf("ConfidenceBand(%v, %v) = %q, want %q", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestSafeModeTriggersIndependently(t *testing.T) {
	tests := []struct {
		name string
		band advisory.ConfidenceBand
		ndvi float64
		want bool
	}{
		{"low confidence alone", advisory.ConfidenceLow, 0.9, true},
		{"low vegetation alone", advisory.ConfidenceHigh, 0.2, true},
		{"both triggers", advisory.ConfidenceLow, 0.1, true},
		{"neither trigger", advisory.ConfidenceHigh, 0.5, false},
		{"ndvi exactly at floor", advisory.ConfidenceMedium, 0.28, false},
		{"ndvi just below floor", advisory.ConfidenceMedium, 0.279, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeMode(tt.band, tt.ndvi); got != tt.want {
				t.Errorf("SafeMode(%q, %v) = %v, want %v", tt.band, tt.ndvi, got, tt.want)
			}
		})
	}
}
