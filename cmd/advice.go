package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/google/subcommands"
)

type adviceCmd struct {
	symbol string
}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "ask the AI advisor" }
func (*adviceCmd) Usage() string {
	return `stockdesk advice <question...>
stockdesk advice -s <symbol>

  Asks the AI advisor a free-form question, or with -s asks for an
  assessment of a symbol based on its price history.
`
}

func (c *adviceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol for history-based advice")
}

func (c *adviceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks := stockdesk.NewStockModel(newClient())

	var advice string
	var err error
	switch {
	case c.symbol != "":
		advice, err = stocks.HistoryAdvice(c.symbol)
	case f.NArg() > 0:
		advice, err = stocks.Advice(strings.Join(f.Args(), " "))
	default:
		fmt.Fprintln(os.Stderr, "Error: a question or -s <symbol> is required.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting advice: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(advice)
	return subcommands.ExitSuccess
}
