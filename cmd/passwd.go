package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type passwdCmd struct {
	current  string
	new      string
	newEmail string
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change the password (and optionally the email) of the account" }
func (*passwdCmd) Usage() string {
	return `stockdesk passwd -p <current> -n <new> [-e <new-email>]

  Changes the password of the logged-in account, and its email when -e
  is given. The stored session is updated to the new credentials.
`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.current, "p", "", "Current password")
	f.StringVar(&c.new, "n", "", "New password")
	f.StringVar(&c.newEmail, "e", "", "New email (unchanged when empty)")
}

func (c *passwdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.current == "" || c.new == "" {
		fmt.Fprintln(os.Stderr, "Error: -p and -n are required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	user := newUserModel(client)
	if err := user.UpdatePassword(c.current, c.new, c.newEmail); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating password: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveSession(client.Session()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Password updated.")
	return subcommands.ExitSuccess
}
