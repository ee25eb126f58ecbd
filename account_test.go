package fusion

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func testRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestBankAccount_DepositWithdraw(t *testing.T) {
	testCases := []struct {
		name        string
		ops         func(a *BankAccount) error
		wantErr     error
		wantBalance float64
		wantLog     []string
	}{
		{
			name:        "simple deposit",
			ops:         func(a *BankAccount) error { return a.Deposit(1000) },
			wantBalance: 1000,
			wantLog:     []string{"Deposited 1000.00"},
		},
		{
			name:        "zero deposit rejected",
			ops:         func(a *BankAccount) error { return a.Deposit(0) },
			wantErr:     ErrInvalidAmount,
			wantBalance: 0,
			wantLog:     []string{},
		},
		{
			name:        "negative withdrawal rejected",
			ops:         func(a *BankAccount) error { return a.Withdraw(-5) },
			wantErr:     ErrInvalidAmount,
			wantBalance: 0,
			wantLog:     []string{},
		},
		{
			name: "withdrawal over balance rejected, balance unchanged",
			ops: func(a *BankAccount) error {
				if err := a.Deposit(100); err != nil {
					return err
				}
				return a.Withdraw(100.01)
			},
			wantErr:     ErrInsufficientFunds,
			wantBalance: 100,
			wantLog:     []string{"Deposited 100.00"},
		},
		{
			name: "deposit then withdraw",
			ops: func(a *BankAccount) error {
				if err := a.Deposit(250.50); err != nil {
					return err
				}
				return a.Withdraw(100.25)
			},
			wantBalance: 150.25,
			wantLog:     []string{"Deposited 250.50", "Withdrew 100.25"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := newAccount("SBI", 1234, testRand())
			err := tc.ops(a)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
			if a.Balance() != tc.wantBalance {
				t.Errorf("Balance() = %.2f, want %.2f", a.Balance(), tc.wantBalance)
			}
			if got := a.Transactions(); !reflect.DeepEqual(got, tc.wantLog) {
				t.Errorf("Transactions() = %v, want %v", got, tc.wantLog)
			}
		})
	}
}

func TestBankAccount_Authenticate(t *testing.T) {
	a := newAccount("HDFC", 4321, testRand())
	if !a.Authenticate(4321) {
		t.Error("Authenticate(4321) = false, want true")
	}
	if a.Authenticate(1111) {
		t.Error("Authenticate(1111) = true, want false")
	}
}

func TestNewAccount_NumberRange(t *testing.T) {
	rng := testRand()
	for i := 0; i < 1000; i++ {
		a := newAccount("ICICI", 0, rng)
		if a.Number < 10000 || a.Number > 99999 {
			t.Fatalf("account number %d out of range", a.Number)
		}
	}
}
