package tabular

import (
	"log"
	"strings"
)

// VillageIndex is the file-backed village-to-district mapping.
type VillageIndex struct {
	byVillage map[string]string
}

// LoadVillageIndex reads the village map. The table is optional: a missing
// or unreadable file yields an empty index and a warning, never an error —
// the resolver then degrades to passthrough.
func LoadVillageIndex(path string) *VillageIndex {
	ix := &VillageIndex{byVillage: make(map[string]string)}

	table, err := NewReader(path).Read()
	if err != nil {
		log.Printf("[tabular] Warning: village map unavailable, resolver runs in passthrough mode: %v", err)
		return ix
	}

	vi, okV := columnIndex(table.Headers, "village")
	di, okD := columnIndex(table.Headers, "district")
	if !okV || !okD {
		log.Printf("[tabular] Warning: village map missing village/district columns, ignoring %s", path)
		return ix
	}

	for _, row := range table.Rows {
		village := strings.ToLower(strings.TrimSpace(row[vi]))
		district := strings.TrimSpace(row[di])
		if village == "" || district == "" {
			continue
		}
		if _, exists := ix.byVillage[village]; !exists {
			ix.byVillage[village] = district
		}
	}
	return ix
}

// District returns the mapped district for a normalized village name.
func (ix *VillageIndex) District(village string) (string, bool) {
	d, ok := ix.byVillage[strings.ToLower(strings.TrimSpace(village))]
	return d, ok
}

// Len returns the number of mapped villages.
func (ix *VillageIndex) Len() int {
	return len(ix.byVillage)
}
