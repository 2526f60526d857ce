package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type unregisterCmd struct {
	password string
	yes      bool
}

func (*unregisterCmd) Name() string     { return "unregister" }
func (*unregisterCmd) Synopsis() string { return "delete the logged-in account" }
func (*unregisterCmd) Usage() string {
	return `stockdesk unregister -p <password> -yes

  Deletes the logged-in account from the platform and forgets the
  stored session. This cannot be undone; -yes is required.
`
}

func (c *unregisterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.password, "p", "", "Account password")
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion")
}

func (c *unregisterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: account deletion requires -yes.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	user := newUserModel(client)
	if err := user.DeleteAccount(c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}

	// deleting the account does not clear the session by itself
	client.Session().Clear()
	if err := clearSessionFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing saved session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Account deleted.")
	return subcommands.ExitSuccess
}
