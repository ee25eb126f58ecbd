package fusion

import "testing"

func TestNewMarket_SeedsPrices(t *testing.T) {
	// A fresh market is immediately quotable: no price is ever zero, so a
	// purchase against it always has a cost.
	m := NewMarket(testRand())
	for _, q := range m.Quotes() {
		if q.Price < 100 || q.Price > 199 {
			t.Errorf("fresh price %s = %v, want within [100, 199]", q.Symbol, q.Price)
		}
	}
}

func TestMarket_Refresh(t *testing.T) {
	m := NewMarket(testRand())
	m.Refresh(testRand())

	quotes := m.Quotes()
	if len(quotes) != len(Stocks) {
		t.Fatalf("Quotes() has %d entries, want %d", len(quotes), len(Stocks))
	}
	for i, q := range quotes {
		if q.Symbol != Stocks[i] {
			t.Errorf("quote %d symbol = %q, want %q", i, q.Symbol, Stocks[i])
		}
		if q.Price < 100 || q.Price > 199 {
			t.Errorf("price %s = %v, want within [100, 199]", q.Symbol, q.Price)
		}
		if q.Price != float64(int(q.Price)) {
			t.Errorf("price %s = %v, want an integer value", q.Symbol, q.Price)
		}
	}
}

func TestMarket_Price(t *testing.T) {
	m := NewMarket(testRand())

	if _, ok := m.Price("RELIANCE"); !ok {
		t.Error(`Price("RELIANCE") not found`)
	}
	if _, ok := m.Price("GOOG"); ok {
		t.Error(`Price("GOOG") found, want unknown`)
	}
}
