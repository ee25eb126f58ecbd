package fusion

// AccountSummary is one line of a portfolio view.
type AccountSummary struct {
	Bank    string
	Number  int
	Balance float64
}

// Portfolio is a read-only aggregation of everything a user owns. Building
// it has no side effects; all slices are copies.
type Portfolio struct {
	User     string
	Accounts []AccountSummary
	Stocks   []StockHolding
	SIPs     []SIPHolding
}

// Portfolio returns the user's current portfolio view.
func (u *User) Portfolio() Portfolio {
	p := Portfolio{
		User:     u.name,
		Accounts: make([]AccountSummary, 0, len(u.accounts)),
		Stocks:   append([]StockHolding(nil), u.stocks...),
		SIPs:     append([]SIPHolding(nil), u.sips...),
	}
	for _, a := range u.accounts {
		p.Accounts = append(p.Accounts, AccountSummary{Bank: a.Bank, Number: a.Number, Balance: a.balance})
	}
	return p
}
