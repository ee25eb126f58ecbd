package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fusion/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	userFlags
	account int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display an account's balance and transaction log" }
func (*logCmd) Usage() string {
	return `ffn log -u <user> -p <password> [-account <n>]

  Shows the balance and the retained transactions of the n-th account
  (1-based), oldest first. At most the 50 most recent entries are kept.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 1, "1-based account selection")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Transactions(renderer.Statement{
		Bank:    acc.Bank,
		Number:  acc.Number,
		Balance: acc.Balance(),
		Entries: acc.Transactions(),
	}))
	// Login applied the SIP growth step; keep it on disk.
	saveApp(app)
	return subcommands.ExitSuccess
}
