package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type buyCmd struct {
	userFlags
	account int
	pin     int
	symbol  string
	qty     int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy stock, paying from a bank account" }
func (*buyCmd) Usage() string {
	return `ffn buy -u <user> -p <password> -account <n> -pin <NNNN> -symbol <S> -qty <q>

  Buys q units of a catalog symbol at its current simulated price, debiting
  the n-th account. Buying an already-held symbol merges into the existing
  position.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 1, "1-based account selection")
	f.IntVar(&c.pin, "pin", 0, "Account PIN")
	f.StringVar(&c.symbol, "symbol", "", "Catalog symbol (see ffn market)")
	f.IntVar(&c.qty, "qty", 0, "Quantity to buy")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	cost, err := u.BuyStock(app.Market(), acc, c.pin, c.symbol, c.qty)
	if err != nil {
		return fail(err)
	}
	saveApp(app)
	fmt.Printf("Bought %d %s for %.2f. New balance: %.2f\n", c.qty, c.symbol, cost, acc.Balance())
	return subcommands.ExitSuccess
}
