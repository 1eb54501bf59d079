package soil

import (
	"testing"

	"cropadvisor/domain/advisory"
	"cropadvisor/domain/agro"
)

func health(n advisory.NutrientBand) advisory.SoilHealth {
	return advisory.SoilHealth{
		Nitrogen:   n,
		Phosphorus: advisory.BandMedium,
		Potassium:  advisory.BandMedium,
	}
}

func TestInferBehavior(t *testing.T) {
	tests := []struct {
		name string
		in   BehaviorInput
		want advisory.SoilBehavior
	}{
		{
			name: "strong vegetation low nitrogen",
			in:   BehaviorInput{Health: health(advisory.BandLow), NDVI: 0.5, Zone: agro.ZoneNE},
			want: advisory.BehaviorResponsiveDepleting,
		},
		{
			name: "weak vegetation medium nitrogen",
			in:   BehaviorInput{Health: health(advisory.BandMedium), NDVI: 0.25, Zone: agro.ZoneNE},
			want: advisory.BehaviorMoistureStressed,
		},
		{
			name: "dry zone",
			in:   BehaviorInput{Health: health(advisory.BandMedium), NDVI: 0.35, Zone: agro.ZoneDry},
			want: advisory.BehaviorLowRetention,
		},
		{
			name: "delta zone",
			in:   BehaviorInput{Health: health(advisory.BandHigh), NDVI: 0.35, Zone: agro.ZoneDelta},
			want: advisory.BehaviorHighRetention,
		},
		{
			name: "no rule matches",
			in:   BehaviorInput{Health: health(advisory.BandHigh), NDVI: 0.35, Zone: agro.ZoneNE},
			want: advisory.BehaviorBalanced,
		},
		{
			name: "unmapped zone skips zone rules",
			in:   BehaviorInput{Health: health(advisory.BandHigh), NDVI: 0.35, Zone: agro.ZoneUnknown},
			want: advisory.BehaviorBalanced,
		},
		{
			// NDVI 0.45 is not strictly above the responsive bound.
			name: "responsive bound is exclusive",
			in:   BehaviorInput{Health: health(advisory.BandLow), NDVI: 0.45, Zone: agro.ZoneNE},
			want: advisory.BehaviorBalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferBehavior(tt.in); got != tt.want {
				t.Errorf("InferBehavior = %q, want %q", got, tt.want)
			}
		})
	}
}

// Rule order matters: a dry-zone soil with strong vegetation and low
// nitrogen must classify as responsive, not low-retention.
func TestInferBehaviorOrder(t *testing.T) {
	in := BehaviorInput{Health: health(advisory.BandLow), NDVI: 0.6, Zone: agro.ZoneDry}
	if got := InferBehavior(in); got != advisory.BehaviorResponsiveDepleting {
		t.Errorf("vegetation rule should fire before zone rule, got %q", got)
	}

	in = BehaviorInput{Health: health(advisory.BandMedium), NDVI: 0.2, Zone: agro.ZoneDelta}
	if got := InferBehavior(in); got != advisory.BehaviorMoistureStressed {
		t.Errorf("moisture rule should fire before delta rule, got %q", got)
	}
}
