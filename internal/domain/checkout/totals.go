package checkout

import "github.com/shopspring/decimal"

// Totals is the computed price breakdown of a checkout.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals applies the discount rate to the subtotal and adds the flat
// delivery fee: total = subtotal - subtotal*rate + fee.
func ComputeTotals(subtotal, rate, fee decimal.Decimal) Totals {
	discount := subtotal.Mul(rate)
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount).Add(fee),
	}
}
