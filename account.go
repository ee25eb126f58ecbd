package fusion

import (
	"fmt"
	"math/rand"
)

// MaxAccounts is the number of bank accounts a single user may hold.
const MaxAccounts = 5

// Banks is the closed catalog of banks an account can be opened with.
// Accounts are created by 1-based catalog index.
var Banks = []string{
	"SBI", "HDFC", "ICICI", "Axis", "Kotak", "PNB",
	"BankOfBaroda", "IndusInd", "YesBank", "Canara", "Union", "IDFC",
}

// BankAccount is a single bank account: a bank from the catalog, a generated
// account number, a PIN, a balance and its transaction log.
//
// Every balance-changing operation appends exactly one log entry describing
// the change. Accounts are never deleted.
type BankAccount struct {
	Bank   string
	Number int

	pin     int
	balance float64
	log     TransactionLog
}

// newAccount creates an account with a zero balance and a freshly generated
// account number in [10000, 99999]. Numbers are not guaranteed unique across
// accounts; see the format documentation topic.
func newAccount(bank string, pin int, rng *rand.Rand) *BankAccount {
	return &BankAccount{Bank: bank, Number: 10000 + rng.Intn(90000), pin: pin}
}

// Balance returns the current balance.
func (a *BankAccount) Balance() float64 { return a.balance }

// Transactions returns the retained transaction descriptions, oldest first.
func (a *BankAccount) Transactions() []string { return a.log.Entries() }

// Authenticate reports whether pin matches the account's PIN.
func (a *BankAccount) Authenticate(pin int) bool { return pin == a.pin }

// Deposit adds amount to the balance and logs it.
// It returns ErrInvalidAmount if amount is not strictly positive.
func (a *BankAccount) Deposit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit of %.2f: %w", amount, ErrInvalidAmount)
	}
	a.credit(amount, fmt.Sprintf("Deposited %.2f", amount))
	return nil
}

// Withdraw removes amount from the balance and logs it.
// It returns ErrInvalidAmount if amount is not strictly positive, and
// ErrInsufficientFunds if amount exceeds the balance; the balance is
// unchanged on failure.
func (a *BankAccount) Withdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("withdrawal of %.2f: %w", amount, ErrInvalidAmount)
	}
	return a.debit(amount, fmt.Sprintf("Withdrew %.2f", amount))
}

// debit is the internal primitive behind withdrawals and purchases. It
// enforces the balance-sufficiency rule and logs the description.
func (a *BankAccount) debit(amount float64, desc string) error {
	if amount > a.balance {
		return fmt.Errorf("debit of %.2f exceeds balance %.2f: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance -= amount
	a.log.Append(desc)
	return nil
}

// credit is the internal primitive behind deposits and SIP redemptions.
// There is no upper bound.
func (a *BankAccount) credit(amount float64, desc string) {
	a.balance += amount
	a.log.Append(desc)
}
