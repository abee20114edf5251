package commons

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatUSD renders an exact decimal amount the way the front end displays
// currency: thousands separators, exactly two fraction digits, leading
// minus for negatives. For example "$1,234.56" and "-$5.75".
//
// Amounts carry more than two fraction digits once interest has been
// assessed; display rounds half up to cents, the stored value stays exact.
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
