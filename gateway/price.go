package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// priceProbes are the object fields a current-data payload may carry
// its price under, tried in order.
var priceProbes = []string{"$.price", "$.currentPrice", "$.close"}

// extractPrice reads a price from a loosely-shaped payload: a bare JSON
// number, a quoted number, plain text, or an object probed with
// jsonpath.
func extractPrice(body []byte) (decimal.Decimal, error) {
	var jval any
	if err := json.Unmarshal(body, &jval); err != nil {
		// not JSON at all: some provider payloads are relayed as text
		return parsePrice(strings.TrimSpace(string(body)))
	}

	if obj, ok := jval.(map[string]any); ok {
		for _, path := range priceProbes {
			v, err := jsonpath.Get(path, any(obj))
			if err != nil {
				continue
			}
			// jsonpath may answer with a single value or a list of one
			if list, ok := v.([]any); ok && len(list) > 0 {
				v = list[0]
			}
			return priceValue(v)
		}
		return decimal.Zero, fmt.Errorf("no price field in payload %s", string(body))
	}
	return priceValue(jval)
}

func priceValue(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), nil
	case string:
		return parsePrice(val)
	default:
		return decimal.Zero, fmt.Errorf("cannot read a price from %v", v)
	}
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return d, nil
}
