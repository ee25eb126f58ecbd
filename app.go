package fusion

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

// DefaultFile is the default persistence path, relative to the working
// directory.
const DefaultFile = "userdata.txt"

// App is the process-wide state of the ledger: the user directory, the
// simulated market and the randomness source, tied to one storage path.
// It is created once at startup, mutated in place for the session, and
// flushed after state-changing operations and on exit. There is exactly one
// logical thread of control; concurrent sessions would need locking this
// type does not have.
type App struct {
	dir    *Directory
	market *Market
	rng    *rand.Rand
	path   string
}

// NewApp returns an app persisting to path, with an empty directory.
// Call Load to populate it from storage.
func NewApp(path string) *App {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &App{
		dir:    NewDirectory(),
		market: NewMarket(rng),
		rng:    rng,
		path:   path,
	}
}

// Directory returns the user directory.
func (a *App) Directory() *Directory { return a.dir }

// Market returns the simulated market.
func (a *App) Market() *Market { return a.market }

// Load populates the directory from the persistence file. A missing file is
// not an error: the directory simply starts empty. A corrupted file is
// recovered by truncation, never rejected.
func (a *App) Load() error {
	f, err := os.Open(a.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", a.path, err)
	}
	defer f.Close()
	a.dir = DecodeDirectory(f)
	return nil
}

// Save writes the directory to the persistence file, replacing it. A write
// failure leaves the in-memory state untouched; callers report it as a
// warning, it is never fatal.
func (a *App) Save() error {
	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", a.path, err)
	}
	defer f.Close()
	if err := EncodeDirectory(f, a.dir); err != nil {
		return fmt.Errorf("cannot write %q: %w", a.path, err)
	}
	return nil
}

// SignUp creates a new user in the directory.
func (a *App) SignUp(username, password string) (*User, error) {
	return a.dir.SignUp(username, password)
}

// Login authenticates a user and runs the session-entry side effects: the
// market prices are re-simulated and every SIP position takes one growth
// step.
func (a *App) Login(username, password string) (*User, error) {
	u, err := a.dir.Login(username, password)
	if err != nil {
		return nil, err
	}
	a.market.Refresh(a.rng)
	u.RefreshSIPValues()
	return u, nil
}

// RefreshPrices re-simulates the whole market price table.
func (a *App) RefreshPrices() { a.market.Refresh(a.rng) }

// OpenAccount creates a bank account for u at the given 1-based bank
// catalog choice, optionally crediting an initial deposit.
func (a *App) OpenAccount(u *User, bankChoice, pin int, initial float64) (*BankAccount, error) {
	acc, err := u.OpenAccount(bankChoice, pin, a.rng)
	if err != nil {
		return nil, err
	}
	if initial > 0 {
		acc.credit(initial, fmt.Sprintf("Initial deposit %.2f", initial))
	}
	return acc, nil
}
