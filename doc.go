// Package stockdesk is the client-side core of the stockdesk trading
// platform: thin models over a session-holding gateway client.
//
// The package is split in two layers:
//   - The gateway subpackage issues every remote call, owns header
//     construction and response normalization, and updates the shared
//     Session as a side effect of the authentication operations.
//   - This package wraps the gateway client into the models a user
//     interface consumes: UserModel for the authentication lifecycle,
//     StockModel for market data and AI advice, and PortfolioModel for
//     holdings, transactions and trading.
//
// The models hold no reference to any presentation object; they accept
// plain arguments, return plain records, and report every failure as an
// error for the caller to render.
//
// This package serves as the foundational logic for the `stockdesk`
// command-line tool.
package stockdesk
