// Package money formats monetary values for display. The shop runs with a
// single hardcoded locale (pt-BR) and a fixed currency prefix.
package money

import "github.com/shopspring/decimal"

// Prefix is the currency symbol shown before every amount.
const Prefix = "R$"

// Format renders d with exactly two decimal places and the currency prefix,
// e.g. "R$ 8.50".
func Format(d decimal.Decimal) string {
	return Prefix + " " + d.StringFixed(2)
}

// Percent renders a fractional rate as a whole percentage, e.g. 0.10 -> "10%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}
