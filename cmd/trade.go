package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/ebrelin/stockdesk/gateway"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// tradeCmd implements both buy and sell; kind selects which.
type tradeCmd struct {
	kind     gateway.TransactionType
	clientID int
}

func (c *tradeCmd) Name() string { return strings.ToLower(string(c.kind)) }
func (c *tradeCmd) Synopsis() string {
	if c.kind == gateway.Buy {
		return "buy a quantity of a stock"
	}
	return "sell a quantity of a stock"
}
func (c *tradeCmd) Usage() string {
	name := c.Name()
	return fmt.Sprintf(`stockdesk %s [-client-id <id>] <symbol> <quantity>

  Records a %s transaction for the logged-in account. With -client-id
  the account is identified by its numeric id instead of the stored
  credentials (the legacy path).
`, name, name)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.clientID, "client-id", 0, "Identify the account by numeric client id instead of credentials")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a symbol and a quantity are required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	quantity, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !quantity.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: quantity must be positive.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	portfolio := stockdesk.NewPortfolioModel(client)

	if c.clientID != 0 {
		err = portfolio.Trade(c.clientID, symbol, quantity, c.kind)
	} else {
		email, password := client.Session().Credentials()
		if email == "" || password == "" {
			fmt.Fprintln(os.Stderr, "Not logged in. Run 'stockdesk login' first.")
			return subcommands.ExitFailure
		}
		if c.kind == gateway.Buy {
			err = portfolio.Buy(email, password, symbol, quantity)
		} else {
			err = portfolio.Sell(email, password, symbol, quantity)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ %s %s %s.\n", c.kind, quantity, symbol)
	return subcommands.ExitSuccess
}
