package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/ebrelin/stockdesk/gateway"
	"github.com/ebrelin/stockdesk/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	rangeDays int
	weekly    bool
	interval  int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the price history of a symbol" }
func (*historyCmd) Usage() string {
	return `stockdesk history [-r <days>] [-w [-i <interval>]] <symbol>

  Shows the close-price history of a stock symbol over the last days.
  With -w the history is sampled at a week-based interval. When the
  gateway cannot provide the data the history is simply empty.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.rangeDays, "r", 30, "Number of days of history")
	f.BoolVar(&c.weekly, "w", false, "Use the week-sampled history")
	f.IntVar(&c.interval, "i", 7, "Sampling interval in days, with -w")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	stocks := stockdesk.NewStockModel(newClient())
	var points []gateway.PricePoint
	if c.weekly {
		points = stocks.WeeklyHistory(symbol, c.rangeDays, c.interval)
	} else {
		points = stocks.History(symbol, c.rangeDays)
	}

	if len(points) == 0 {
		fmt.Printf("No history available for %s.\n", symbol)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(symbol, points))
	return subcommands.ExitSuccess
}
