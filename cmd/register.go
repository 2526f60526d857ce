package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account on the platform" }
func (*registerCmd) Usage() string {
	return `stockdesk register -e <email> -p <password>

  Creates a new account. Registration does not log you in; run
  'stockdesk login' afterwards.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email of the new account")
	f.StringVar(&c.password, "p", "", "Password of the new account")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -e and -p are required.")
		return subcommands.ExitUsageError
	}

	user := newUserModel(newClient())
	if err := user.Register(c.email, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Account %s registered.\n", c.email)
	return subcommands.ExitSuccess
}
