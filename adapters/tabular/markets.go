package tabular

import (
	"log"
	"strings"

	"cropadvisor/ports"
)

// MarketDirectory is the file-backed market reference table.
type MarketDirectory struct {
	rows []ports.MarketRow
}

// LoadMarketDirectory reads the market table. Like the village map it is
// never fatal: failures yield an empty directory and the market engine
// falls back to zone reference markets.
func LoadMarketDirectory(path string) *MarketDirectory {
	dir := &MarketDirectory{}

	table, err := NewReader(path).Read()
	if err != nil {
		log.Printf("[tabular] Warning: market reference table unavailable, using zone fallbacks only: %v", err)
		return dir
	}

	ci, okC := columnIndex(table.Headers, "crop")
	mi, okM := columnIndex(table.Headers, "market")
	ti, okT := columnIndex(table.Headers, "trend")
	if !okC || !okM || !okT {
		log.Printf("[tabular] Warning: market table missing crop/market/trend columns, ignoring %s", path)
		return dir
	}

	for _, row := range table.Rows {
		crop := strings.TrimSpace(row[ci])
		if crop == "" {
			continue
		}
		dir.rows = append(dir.rows, ports.MarketRow{
			Crop:   crop,
			Market: strings.TrimSpace(row[mi]),
			Trend:  strings.TrimSpace(row[ti]),
		})
	}
	return dir
}

// FindByCrop returns the first row matching the crop, case-insensitively.
func (d *MarketDirectory) FindByCrop(crop string) (ports.MarketRow, bool) {
	for _, row := range d.rows {
		if strings.EqualFold(row.Crop, strings.TrimSpace(crop)) {
			return row, true
		}
	}
	return ports.MarketRow{}, false
}

// Len returns the number of market rows.
func (d *MarketDirectory) Len() int {
	return len(d.rows)
}
