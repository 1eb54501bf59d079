package rules

import (
	"fmt"

	"cropadvisor/domain/advisory"
	"cropadvisor/domain/agro"
	"cropadvisor/ports"
)

// Fallback reference market per agro-climatic zone.
var zoneReferenceMarkets = map[agro.Zone]string{
	agro.ZoneWest:  "Erode",
	agro.ZoneDelta: "Thanjavur",
	agro.ZoneSouth: "Madurai",
	agro.ZoneNE:    "Chennai",
	agro.ZoneDry:   "Salem",
}

const stateMarket = "State Market"

const cropMarketNote = "Reference market based on crop trade volume. " +
	"Shown for awareness only, not local pricing."

// MarketEngine answers crop/zone market lookups. Total function: a missing
// crop match falls back to the zone table, an unknown zone to the state
// market. It never reports "no data".
type MarketEngine struct {
	dir ports.MarketDirectory
}

// NewMarketEngine creates a market engine over a directory. A nil directory
// is allowed and behaves like an empty table.
func NewMarketEngine(dir ports.MarketDirectory) *MarketEngine {
	return &MarketEngine{dir: dir}
}

// Info returns a nearby high-volume reference market for the crop.
func (e *MarketEngine) Info(crop string, zone agro.Zone) advisory.MarketAdvice {
	if e.dir != nil {
		if row, ok := e.dir.FindByCrop(crop); ok {
			return advisory.MarketAdvice{
				Status: "OK",
				Market: row.Market,
				Trend:  row.Trend,
				Note:   cropMarketNote,
			}
		}
	}

	market, ok := zoneReferenceMarkets[zone]
	note := fmt.Sprintf(
		"Reference market inferred using %s agro-climatic zone. "+
			"Used only to show general trend, not local price.", zone)
	if !ok {
		market = stateMarket
		note = "Reference market inferred from state-level trade data. " +
			"Used only to show general trend, not local price."
	}

	return advisory.MarketAdvice{
		Status: "OK",
		Market: market,
		Trend:  "Stable",
		Note:   note,
	}
}
