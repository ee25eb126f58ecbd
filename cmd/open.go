package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fusion"
	"github.com/etnz/fusion/renderer"
	"github.com/google/subcommands"
)

type openCmd struct {
	userFlags
	bank    int
	pin     int
	deposit float64
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a bank account" }
func (*openCmd) Usage() string {
	return `ffn open -u <user> -p <password> -bank <1..12> -pin <NNNN> [-deposit <amount>]

  Opens a bank account at the chosen bank, optionally crediting an initial
  deposit. Without -bank, lists the bank catalog.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.bank, "bank", 0, "1-based choice in the bank catalog")
	f.IntVar(&c.pin, "pin", 0, "4-digit PIN for the new account")
	f.Float64Var(&c.deposit, "deposit", 0, "Optional initial deposit")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.bank == 0 {
		printMarkdown(renderer.Banks(fusion.Banks))
		return subcommands.ExitSuccess
	}
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	u, err := c.login(app)
	if err != nil {
		return fail(err)
	}
	acc, err := app.OpenAccount(u, c.bank, c.pin, c.deposit)
	if err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("Account created: %s A/C:%d\n", acc.Bank, acc.Number)
	return subcommands.ExitSuccess
}
