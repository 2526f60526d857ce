package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ebrelin/stockdesk/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a documentation topic" }
func (*topicCmd) Usage() string {
	return `stockdesk topic [<name>]

  Shows a documentation topic, or lists the available topics when no
  name is given.
`
}

func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		names, err := docs.Topics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Available topics: %s\n", strings.Join(names, ", "))
		return subcommands.ExitSuccess
	}

	content, err := docs.Topic(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(content)
	return subcommands.ExitSuccess
}
