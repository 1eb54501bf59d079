package location

import (
	"strings"

	"cropadvisor/domain/advisory"
	"cropadvisor/ports"
)

// Resolver maps free-text place names to canonical district keys.
type Resolver struct {
	villages ports.VillageIndex
}

// NewResolver creates a resolver over an optional village index. Passing nil
// degrades resolution to passthrough.
func NewResolver(villages ports.VillageIndex) *Resolver {
	return &Resolver{villages: villages}
}

// Resolve normalizes the place name and tries an exact village match. On a
// hit it returns the mapped district; otherwise the input itself is assumed
// to be a district and passes through unchanged — the caller detects the
// data gap via fallback escalation. There is no fuzzy or nearest-neighbor
// matching; misspelled places land on DISTRICT_ASSUMED.
func (r *Resolver) Resolve(place string) (string, advisory.ResolutionMethod) {
	name := strings.ToLower(strings.TrimSpace(place))

	if r.villages != nil {
		if district, ok := r.villages.District(name); ok {
			return strings.ToLower(strings.TrimSpace(district)), advisory.MethodVillageMatch
		}
	}

	return name, advisory.MethodDistrictAssumed
}
