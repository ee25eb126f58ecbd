package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type depositCmd struct {
	userFlags
	account int
	amount  float64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `ffn deposit -u <user> -p <password> -account <n> -amount <amount>

  Deposits a strictly positive amount into the n-th account (1-based).
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 1, "1-based account selection")
	f.Float64Var(&c.amount, "amount", 0, "Amount to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	u, err := c.login(app)
	if err != nil {
		return fail(err)
	}
	acc, err := u.Account(c.account - 1)
	if err != nil {
		return fail(err)
	}
	if err := acc.Deposit(c.amount); err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("Deposited %.2f. New balance: %.2f\n", c.amount, acc.Balance())
	return subcommands.ExitSuccess
}

type withdrawCmd struct {
	userFlags
	account int
	amount  float64
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `ffn withdraw -u <user> -p <password> -account <n> -amount <amount>

  Withdraws from the n-th account (1-based); the balance can never go
  negative.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 1, "1-based account selection")
	f.Float64Var(&c.amount, "amount", 0, "Amount to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	u, err := c.login(app)
	if err != nil {
		return fail(err)
	}
	acc, err := u.Account(c.account - 1)
	if err != nil {
		return fail(err)
	}
	if err := acc.Withdraw(c.amount); err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("Withdrew %.2f. New balance: %.2f\n", c.amount, acc.Balance())
	return subcommands.ExitSuccess
}
