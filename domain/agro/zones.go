package agro

import "strings"

// Zone is one of the five Tamil Nadu agro-climatic zones, aligned with the
// TNAU / ICAR zonation. Districts outside the table have ZoneUnknown.
type Zone string

const (
	ZoneDelta   Zone = "DELTA"
	ZoneWest    Zone = "WEST"
	ZoneSouth   Zone = "SOUTH"
	ZoneNE      Zone = "NE"
	ZoneDry     Zone = "DRY"
	ZoneUnknown Zone = ""
)

var districtToZone = map[string]Zone{
	// Cauvery Delta Zone
	"thanjavur":    ZoneDelta,
	"thiruvarur":   ZoneDelta,
	"nagapattinam": ZoneDelta,
	"cuddalore":    ZoneDelta,

	// Western Zone
	"coimbatore": ZoneWest,
	"erode":      ZoneWest,
	"salem":      ZoneWest,
	"tiruppur":   ZoneWest,
	"namakkal":   ZoneWest,

	// Southern Zone
	"madurai":        ZoneSouth,
	"virudhunagar":   ZoneSouth,
	"thoothukudi":    ZoneSouth,
	"ramanathapuram": ZoneSouth,
	"kanniyakumari":  ZoneSouth,
	"dindigul":       ZoneSouth,

	// North Eastern Zone
	"vellore":      ZoneNE,
	"ranipet":      ZoneNE,
	"tiruvallur":   ZoneNE,
	"kanchipuram":  ZoneNE,
	"chengalpattu": ZoneNE,
	"chennai":      ZoneNE,

	// Dry Zone
	"dharmapuri":   ZoneDry,
	"krishnagiri":  ZoneDry,
	"karur":        ZoneDry,
	"ariyalur":     ZoneDry,
	"perambalur":   ZoneDry,
	"pudukkottai":  ZoneDry,
	"kallakurichi": ZoneDry,
}

// Crop tendencies per zone, used only as a tie-breaking bias during ranking,
// never as a hard filter.
var zoneBiasCrops = map[Zone][]string{
	ZoneDelta: {"paddy", "rice"},
	ZoneWest:  {"maize", "cotton"},
	ZoneSouth: {"millet", "pulse"},
	ZoneNE:    {"paddy", "groundnut"},
	ZoneDry:   {"millet", "groundnut"},
}

// DistrictZone resolves a district name to its agro-climatic zone.
// Unmapped districts return ZoneUnknown.
func DistrictZone(district string) Zone {
	if district == "" {
		return ZoneUnknown
	}
	return districtToZone[strings.ToLower(strings.TrimSpace(district))]
}

// BiasCrops returns the zone's crop tendency list. Unknown zones return an
// empty list, which makes bias-driven re-ranking a no-op.
func BiasCrops(zone Zone) []string {
	return zoneBiasCrops[zone]
}

// Known reports whether the zone is one of the five mapped zones.
func (z Zone) Known() bool {
	return z != ZoneUnknown
}

// Districts returns every district present in the zone table.
func Districts() []string {
	out := make([]string, 0, len(districtToZone))
	for d := range districtToZone {
		out = append(out, d)
	}
	return out
}
