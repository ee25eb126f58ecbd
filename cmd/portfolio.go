package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fusion/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct {
	userFlags
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display a user's full portfolio" }
func (*portfolioCmd) Usage() string {
	return `ffn portfolio -u <user> -p <password>

  Shows every bank account, stock holding and SIP position of the user.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	u, err := c.login(app)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Portfolio(u.Portfolio()))
	// Login applied the SIP growth step; keep it on disk.
	saveApp(app)
	return subcommands.ExitSuccess
}
