// Command stockdesk is the terminal client for the stockdesk trading
// platform.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ebrelin/stockdesk/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// a .env file may provide STOCKDESK_GATEWAY_URL; missing is fine
	_ = godotenv.Load()

	// shell completion; a no-op outside a completion request
	sub := make(map[string]*complete.Command)
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("stockdesk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
