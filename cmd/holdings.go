package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/ebrelin/stockdesk/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	currency string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the portfolio holdings with their current value" }
func (*holdingsCmd) Usage() string {
	return `stockdesk holdings [-c <currency>]

  Lists the positions of the logged-in account, each augmented with the
  symbol's current price and total value.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Display currency for the portfolio total")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio := stockdesk.NewPortfolioModel(newClient())
	holdings, total, err := portfolio.Holdings("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(holdings, stockdesk.M(total, c.currency)))
	return subcommands.ExitSuccess
}
