package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
)

func Test_extractPrice(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"bare number", `210.5`, "210.5", false},
		{"quoted number", `"210.5"`, "210.5", false},
		{"plain text", `210.5 `, "210.5", false},
		{"price field", `{"price": 210.5}`, "210.5", false},
		{"currentPrice field", `{"currentPrice": "1.5"}`, "1.5", false},
		{"close field", `{"symbol": "AAPL", "close": 99}`, "99", false},
		{"object without price", `{"symbol": "AAPL"}`, "", true},
		{"not a price", `"soon"`, "", true},
		{"array", `[210.5]`, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractPrice([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("extractPrice(%q) expected an error, got %v", tc.body, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractPrice(%q) unexpected error = %v", tc.body, err)
			}
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Errorf("extractPrice(%q) = %v, want %v", tc.body, got, want)
			}
		})
	}
}
