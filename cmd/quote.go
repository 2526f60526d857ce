package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	currency string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the current price of a symbol" }
func (*quoteCmd) Usage() string {
	return `stockdesk quote [-c <currency>] <symbol>

  Fetches the latest price of a stock symbol.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Display currency for the price")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	stocks := stockdesk.NewStockModel(newClient())
	price, err := stocks.CurrentPrice(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", symbol, stockdesk.M(price, c.currency))
	return subcommands.ExitSuccess
}
