package fusion

import (
	"fmt"
	"math/rand"
)

// Per-user capacity bounds.
const (
	MaxStockHoldings = 10
	MaxSIPHoldings   = 5

	maxUsernameLen = 29
	maxPasswordLen = 19
)

// sipGrowth is the multiplicative step applied to every SIP position on
// session entry. There is no compounding period tracking; the refresh is
// caller-triggered, not time-based.
const sipGrowth = 1.03

// StockHolding is a user's position in one stock symbol. Symbols are unique
// within a user's holdings: buying an already-held symbol increments the
// quantity.
type StockHolding struct {
	Symbol   string
	Quantity int
}

// SIPHolding is a user's position in one SIP scheme. Scheme is the
// zero-based index into SIPSchemes; Name duplicates the scheme's name for
// display. A user holds at most one SIPHolding per scheme.
type SIPHolding struct {
	Name     string
	Invested float64
	Scheme   int
}

// User aggregates a user's credentials, bank accounts and holdings.
// Users are created by sign-up and never deleted.
type User struct {
	name     string
	password string
	accounts []*BankAccount
	stocks   []StockHolding
	sips     []SIPHolding
}

func newUser(name, password string) *User {
	if len(name) > maxUsernameLen {
		name = name[:maxUsernameLen]
	}
	if len(password) > maxPasswordLen {
		password = password[:maxPasswordLen]
	}
	return &User{name: name, password: password}
}

// Name returns the username.
func (u *User) Name() string { return u.name }

// Accounts returns the user's bank accounts in creation order.
func (u *User) Accounts() []*BankAccount { return u.accounts }

// Account returns the i-th bank account (zero-based), or ErrInvalidSelection
// if i is out of range.
func (u *User) Account(i int) (*BankAccount, error) {
	if i < 0 || i >= len(u.accounts) {
		return nil, fmt.Errorf("account %d of %d: %w", i+1, len(u.accounts), ErrInvalidSelection)
	}
	return u.accounts[i], nil
}

// Stocks returns the user's stock holdings.
func (u *User) Stocks() []StockHolding { return u.stocks }

// SIPs returns the user's SIP holdings.
func (u *User) SIPs() []SIPHolding { return u.sips }

// OpenAccount creates a bank account at the given 1-based bank catalog
// choice. It returns ErrInvalidSelection for an unknown bank and
// ErrAccountLimit when the user already holds MaxAccounts accounts.
func (u *User) OpenAccount(bankChoice, pin int, rng *rand.Rand) (*BankAccount, error) {
	if len(u.accounts) >= MaxAccounts {
		return nil, ErrAccountLimit
	}
	if bankChoice < 1 || bankChoice > len(Banks) {
		return nil, fmt.Errorf("bank %d: %w", bankChoice, ErrInvalidSelection)
	}
	acc := newAccount(Banks[bankChoice-1], pin, rng)
	u.accounts = append(u.accounts, acc)
	return acc, nil
}

// BuyStock purchases qty units of symbol at the market's current price,
// debiting acc for the cost. The resulting position is merged into an
// existing holding for the same symbol, or inserted as a new one.
//
// The account is debited only after the holding bookkeeping is known to
// succeed: a purchase that would exceed MaxStockHoldings fails with
// ErrHoldingLimit and leaves the balance untouched.
func (u *User) BuyStock(m *Market, acc *BankAccount, pin int, symbol string, qty int) (cost float64, err error) {
	if qty < 1 {
		return 0, fmt.Errorf("quantity %d: %w", qty, ErrInvalidAmount)
	}
	price, ok := m.Price(symbol)
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", symbol, ErrInvalidSelection)
	}
	if !acc.Authenticate(pin) {
		return 0, ErrWrongPIN
	}
	cost = price * float64(qty)
	if cost > acc.Balance() {
		return 0, fmt.Errorf("cost %.2f exceeds balance %.2f: %w", cost, acc.Balance(), ErrInsufficientFunds)
	}
	found := -1
	for i := range u.stocks {
		if u.stocks[i].Symbol == symbol {
			found = i
			break
		}
	}
	if found < 0 && len(u.stocks) >= MaxStockHoldings {
		return 0, fmt.Errorf("stock %q: %w", symbol, ErrHoldingLimit)
	}
	if err := acc.debit(cost, fmt.Sprintf("Bought %d %s for %.2f", qty, symbol, cost)); err != nil {
		return 0, err
	}
	if found >= 0 {
		u.stocks[found].Quantity += qty
	} else {
		u.stocks = append(u.stocks, StockHolding{Symbol: symbol, Quantity: qty})
	}
	return cost, nil
}

// CreateSIP opens a SIP position for the scheme at the given zero-based
// catalog index, debiting acc for the scheme's monthly amount. The invested
// amount starts at that first contribution. The created position is returned
// by value; it is a snapshot, not a live view.
func (u *User) CreateSIP(acc *BankAccount, pin int, scheme int) (SIPHolding, error) {
	if scheme < 0 || scheme >= len(SIPSchemes) {
		return SIPHolding{}, fmt.Errorf("scheme %d: %w", scheme, ErrInvalidSelection)
	}
	for i := range u.sips {
		if u.sips[i].Scheme == scheme {
			return SIPHolding{}, fmt.Errorf("scheme %q: %w", SIPSchemes[scheme].Name, ErrDuplicateScheme)
		}
	}
	if len(u.sips) >= MaxSIPHoldings {
		return SIPHolding{}, fmt.Errorf("sip: %w", ErrHoldingLimit)
	}
	if !acc.Authenticate(pin) {
		return SIPHolding{}, ErrWrongPIN
	}
	s := SIPSchemes[scheme]
	if err := acc.debit(s.Monthly, fmt.Sprintf("Invested %.2f in SIP %s", s.Monthly, s.Name)); err != nil {
		return SIPHolding{}, err
	}
	h := SIPHolding{Name: s.Name, Invested: s.Monthly, Scheme: scheme}
	u.sips = append(u.sips, h)
	return h, nil
}

// WithdrawSIP closes the SIP position at the given zero-based index,
// crediting acc with its current invested amount. The remaining holdings
// keep their relative order.
func (u *User) WithdrawSIP(acc *BankAccount, pos int) (float64, error) {
	if pos < 0 || pos >= len(u.sips) {
		return 0, fmt.Errorf("sip %d of %d: %w", pos+1, len(u.sips), ErrInvalidSelection)
	}
	s := u.sips[pos]
	acc.credit(s.Invested, fmt.Sprintf("Withdrew SIP %s: %.2f", s.Name, s.Invested))
	u.sips = append(u.sips[:pos], u.sips[pos+1:]...)
	return s.Invested, nil
}

// RefreshSIPValues applies the simulated growth step to every SIP position.
// It is called once per login, as a session-entry side effect.
func (u *User) RefreshSIPValues() {
	for i := range u.sips {
		u.sips[i].Invested *= sipGrowth
	}
}
