package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and store the session" }
func (*loginCmd) Usage() string {
	return `stockdesk login -e <email> -p <password>

  Authenticates against the gateway and stores the session for the
  following commands. A failed login leaves no session behind.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Account email")
	f.StringVar(&c.password, "p", "", "Account password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -e and -p are required.")
		return subcommands.ExitUsageError
	}

	client := newClient()
	user := newUserModel(client)
	if _, err := user.Login(c.email, c.password); err != nil {
		// the client has already cleared its session; forget the saved
		// one too
		if err := clearSessionFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot clear saved session: %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "Error logging in: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveSession(client.Session()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Logged in as %s.\n", c.email)
	return subcommands.ExitSuccess
}
