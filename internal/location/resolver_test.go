package location

import (
	"testing"

	"cropadvisor/domain/advisory"
	"cropadvisor/internal/testkit"
)

func TestResolveVillageMatch(t *testing.T) {
	r := NewResolver(testkit.StaticVillages{
		"thelungapatti": "Ranipet",
	})

	district, method := r.Resolve("  Thelungapatti ")
	if district != "ranipet" {
		t.Errorf("district = %q, want ranipet", district)
	}
	if method != advisory.MethodVillageMatch {
		t.Errorf("method = %q, want %q", method, advisory.MethodVillageMatch)
	}
}

func TestResolvePassthrough(t *testing.T) {
	r := NewResolver(testkit.StaticVillages{})

	district, method := r.Resolve(" Salem ")
	if district != "salem" {
		t.Errorf("district = %q, want salem", district)
	}
	if method != advisory.MethodDistrictAssumed {
		t.Errorf("method = %q, want %q", method, advisory.MethodDistrictAssumed)
	}
}

// A nil village index is the degraded mode when the mapping table failed to
// load; resolution must still work as passthrough.
func TestResolveNilIndex(t *testing.T) {
	r := NewResolver(nil)

	district, method := r.Resolve("madurai")
	if district != "madurai" || method != advisory.MethodDistrictAssumed {
		t.Errorf("Resolve = (%q, %q), want (madurai, DISTRICT_ASSUMED)", district, method)
	}
}

// No fuzzy matching: a near-miss village name passes through literally.
func TestResolveNoFuzzyMatching(t *testing.T) {
	r := NewResolver(testkit.StaticVillages{"thelungapatti": "Ranipet"})

	district, method := r.Resolve("thelungapati")
	if district != "thelungapati" || method != advisory.MethodDistrictAssumed {
		t.Errorf("Resolve = (%q, %q), want literal passthrough", district, method)
	}
}
