// Package cmd implements the stockdesk CLI, a terminal front end to the
// stockdesk gateway.
//
// Each subcommand is a thin presenter over the core models: it parses
// its flags, calls the model, renders the outcome, and reports every
// failure on stderr. The session survives between invocations in a
// private file, restored into the shared Session before each command
// runs.
package cmd

import (
	"flag"
	"os"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/ebrelin/stockdesk/gateway"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is
// ok to use global variables.

var gatewayURL = flag.String("gateway", "", "Base URL of the stockdesk gateway (defaults to $STOCKDESK_GATEWAY_URL, then "+gateway.DefaultBaseURL+")")

// commands lists every subcommand with its help group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"account", &registerCmd{}},
	{"account", &loginCmd{}},
	{"account", &logoutCmd{}},
	{"account", &whoamiCmd{}},
	{"account", &passwdCmd{}},
	{"account", &unregisterCmd{}},

	{"market data", &quoteCmd{}},
	{"market data", &historyCmd{}},
	{"market data", &adviceCmd{}},

	{"portfolio", &holdingsCmd{}},
	{"portfolio", &transactionsCmd{}},
	{"portfolio", &tradeCmd{kind: gateway.Buy}},
	{"portfolio", &tradeCmd{kind: gateway.Sell}},

	{"help", &topicCmd{}},
}

// Register registers all subcommands on the commander.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Names returns the name of every subcommand, for shell completion.
func Names() []string {
	names := make([]string, 0, len(commands))
	for _, e := range commands {
		names = append(names, e.cmd.Name())
	}
	return names
}

// newClient builds the gateway client with the session restored from
// the previous invocation, if any.
func newClient() *gateway.Client {
	base := *gatewayURL
	if base == "" {
		base = os.Getenv("STOCKDESK_GATEWAY_URL")
	}
	session := gateway.NewSession()
	loadSession(session)
	return gateway.NewClient(base, session)
}

// newUserModel builds the user model with its logged-in state resumed
// from the restored session.
func newUserModel(client *gateway.Client) *stockdesk.UserModel {
	user := stockdesk.NewUserModel(client)
	user.Resume()
	return user
}
