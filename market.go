package fusion

import "math/rand"

// Stocks is the fixed catalog of tradable symbols.
var Stocks = []string{"TCS", "INFY", "RELIANCE", "HDFC", "ICICI"}

// SIPScheme is a recurring investment scheme with a fixed monthly
// contribution amount.
type SIPScheme struct {
	Name    string
	Monthly float64
}

// SIPSchemes is the fixed catalog of available schemes. SIPs are created by
// zero-based catalog index.
var SIPSchemes = []SIPScheme{
	{"HUL_Growth", 500.0},
	{"Bajaj_Finance", 1000.0},
	{"SmallCap_Focus", 750.0},
	{"Tech_Opportunity", 1200.0},
	{"Global_Bonds", 600.0},
}

// Quote pairs a symbol with its current simulated price.
type Quote struct {
	Symbol string
	Price  float64
}

// Market holds the simulated price for every symbol of the Stocks catalog.
// It is a market-simulation stub, not a feed: prices only change when
// Refresh is called.
type Market struct {
	prices []float64
}

// NewMarket returns a market seeded with a fresh set of simulated prices, so
// a purchase can never execute at a zero price.
func NewMarket(rng *rand.Rand) *Market {
	m := &Market{prices: make([]float64, len(Stocks))}
	m.Refresh(rng)
	return m
}

// Refresh replaces every price with a fresh simulated value in [100, 199].
func (m *Market) Refresh(rng *rand.Rand) {
	for i := range m.prices {
		m.prices[i] = float64(100 + rng.Intn(100))
	}
}

// Price returns the current price for symbol, or false if the symbol is not
// in the catalog.
func (m *Market) Price(symbol string) (float64, bool) {
	for i, s := range Stocks {
		if s == symbol {
			return m.prices[i], true
		}
	}
	return 0, false
}

// Quotes returns the full price list in catalog order.
func (m *Market) Quotes() []Quote {
	out := make([]Quote, len(Stocks))
	for i, s := range Stocks {
		out[i] = Quote{Symbol: s, Price: m.prices[i]}
	}
	return out
}
