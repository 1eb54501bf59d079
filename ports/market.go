package ports

// MarketRow is one entry of the market reference table.
type MarketRow struct {
	Crop   string
	Market string
	Trend  string
}

// MarketDirectory answers case-insensitive crop lookups against the market
// reference table, returning the first match.
type MarketDirectory interface {
	FindByCrop(crop string) (MarketRow, bool)
}
