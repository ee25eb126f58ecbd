package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fusion"
	"github.com/etnz/fusion/renderer"
	"github.com/google/subcommands"
)

type sipCmd struct {
	userFlags
	account  int
	pin      int
	create   int
	withdraw int
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "create or withdraw a SIP position" }
func (*sipCmd) Usage() string {
	return `ffn sip -u <user> -p <password> [-create <1..5> | -withdraw <n>] -account <n> -pin <NNNN>

  -create opens a position in the chosen scheme, debiting one monthly
  contribution (at most one position per scheme). -withdraw closes the n-th
  held position (1-based), crediting its current value back. Without either,
  lists the scheme catalog.
`
}

func (c *sipCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 1, "1-based account selection")
	f.IntVar(&c.pin, "pin", 0, "Account PIN (required to create)")
	f.IntVar(&c.create, "create", 0, "1-based scheme choice to create")
	f.IntVar(&c.withdraw, "withdraw", 0, "1-based held position to withdraw")
}

func (c *sipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.create == 0 && c.withdraw == 0 {
		printMarkdown(renderer.Schemes(fusion.SIPSchemes))
		return subcommands.ExitSuccess
	}
	if c.create != 0 && c.withdraw != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
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

	if c.create != 0 {
		s, err := u.CreateSIP(acc, c.pin, c.create-1)
		if err != nil {
			return fail(err)
		}
		saveApp(app)
		fmt.Printf("SIP created: %s, invested %.2f. New balance: %.2f\n", s.Name, s.Invested, acc.Balance())
		return subcommands.ExitSuccess
	}

	amount, err := u.WithdrawSIP(acc, c.withdraw-1)
	if err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("SIP withdrawn: credited %.2f. New balance: %.2f\n", amount, acc.Balance())
	return subcommands.ExitSuccess
}
