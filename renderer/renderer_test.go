package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fusion"
)

func TestPortfolio(t *testing.T) {
	p := fusion.Portfolio{
		User:     "alice",
		Accounts: []fusion.AccountSummary{{Bank: "HDFC", Number: 12345, Balance: 700}},
		Stocks:   []fusion.StockHolding{{Symbol: "TCS", Quantity: 2}},
		SIPs:     []fusion.SIPHolding{{Name: "HUL_Growth", Invested: 515, Scheme: 0}},
	}
	got := Portfolio(p)

	for _, want := range []string{
		"# Portfolio — alice",
		"| HDFC | 12345 | 700.00 |",
		"| TCS | 2 |",
		"| HUL_Growth | 515.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Portfolio() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("Portfolio() reported a template error:\n%s", got)
	}
}

func TestPortfolio_Empty(t *testing.T) {
	got := Portfolio(fusion.Portfolio{User: "bob"})
	for _, want := range []string{"_No bank accounts._", "_No stock holdings._", "_No SIP holdings._"} {
		if !strings.Contains(got, want) {
			t.Errorf("Portfolio() missing %q in:\n%s", want, got)
		}
	}
}

func TestMarket(t *testing.T) {
	got := Market([]fusion.Quote{{Symbol: "TCS", Price: 150}, {Symbol: "INFY", Price: 101}})
	if !strings.Contains(got, "| TCS | 150.00 |") || !strings.Contains(got, "| INFY | 101.00 |") {
		t.Errorf("Market() = %q", got)
	}
}

func TestTransactions(t *testing.T) {
	got := Transactions(Statement{
		Bank:    "SBI",
		Number:  11111,
		Balance: 950.5,
		Entries: []string{"Deposited 1000.00", "Withdrew 49.50"},
	})
	for _, want := range []string{"# SBI A/C 11111", "**950.50**", "Deposited 1000.00", "Withdrew 49.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions() missing %q in:\n%s", want, got)
		}
	}

	if got := Transactions(Statement{Bank: "SBI", Number: 1}); !strings.Contains(got, "_No transactions._") {
		t.Errorf("empty statement = %q", got)
	}
}

func TestCatalogs(t *testing.T) {
	banks := Banks(fusion.Banks)
	if !strings.Contains(banks, "1. SBI") || !strings.Contains(banks, "12. IDFC") {
		t.Errorf("Banks() = %q", banks)
	}
	schemes := Schemes(fusion.SIPSchemes)
	if !strings.Contains(schemes, "1. HUL_Growth (500.00/month)") {
		t.Errorf("Schemes() = %q", schemes)
	}
	if !strings.Contains(schemes, "5. Global_Bonds (600.00/month)") {
		t.Errorf("Schemes() = %q", schemes)
	}
}
