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

type transactionsCmd struct{}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the account's transactions" }
func (*transactionsCmd) Usage() string {
	return `stockdesk transactions

  Lists the buys and sells recorded for the logged-in account.
`
}

func (*transactionsCmd) SetFlags(_ *flag.FlagSet) {}

func (*transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio := stockdesk.NewPortfolioModel(newClient())
	transactions, err := portfolio.Transactions("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}
