package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "log out and forget the stored session" }
func (*logoutCmd) Usage() string {
	return `stockdesk logout

  Clears the stored session. Logout is local: the gateway keeps no
  server-side session, so this always succeeds.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user := newUserModel(newClient())
	user.Logout()
	if err := clearSessionFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing saved session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Logged out.")
	return subcommands.ExitSuccess
}
