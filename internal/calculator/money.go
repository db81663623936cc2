package calculator

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits every amount is held at.
const MoneyScale = 2

var zero = decimal.Zero.Round(MoneyScale)

// RoundMoney rounds d half-up (away from zero) to MoneyScale digits.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// hasMoneyScale reports whether d needs no more than MoneyScale fractional digits.
func hasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// FormatMoney renders d with exactly MoneyScale fractional digits, e.g. "20.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
