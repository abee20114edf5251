package commons_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/commons"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"50", "$50.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-5.75", "-$5.75"},
		{"-0.005", "-$0.01"},
		{"0.407385", "$0.41"},
	}

	for _, c := range cases {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			t.Fatalf("parse %q: %v", c.amount, err)
		}
		if got := commons.FormatUSD(amount); got != c.want {
			t.Fatalf("%s: expected %q, got %q", c.amount, c.want, got)
		}
	}
}
