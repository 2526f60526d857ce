package stockdesk

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display amount in a given currency. Arithmetic stays in
// decimal.Decimal; Money only exists to format the result.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps a decimal amount with its currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// the constructor resolves unknown codes to a usable currency
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with its currency symbol.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsZero() bool     { return m.value.IsZero() }
