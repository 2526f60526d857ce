package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the logged-in account and resolve its user id" }
func (*whoamiCmd) Usage() string {
	return `stockdesk whoami

  Shows the email of the stored session and resolves the account's
  user id from the gateway.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (*whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()
	email, password := client.Session().Credentials()
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Not logged in. Run 'stockdesk login' first.")
		return subcommands.ExitFailure
	}

	id, err := client.UserID(email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving user id: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSession(client.Session()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot save session: %v\n", err)
	}

	if id == "" {
		fmt.Printf("Logged in as %s.\n", email)
	} else {
		fmt.Printf("Logged in as %s (user id %s).\n", email, id)
	}
	return subcommands.ExitSuccess
}
