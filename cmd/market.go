package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fusion/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "list the simulated stock prices" }
func (*marketCmd) Usage() string {
	return `ffn market

  Re-simulates and lists the price of every tradable symbol. Prices are a
  simulation, not a feed, and are not persisted.
`
}

func (*marketCmd) SetFlags(*flag.FlagSet) {}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := loadApp()
	if err != nil {
		return fail(err)
	}
	app.RefreshPrices()
	printMarkdown(renderer.Market(app.Market().Quotes()))
	return subcommands.ExitSuccess
}
