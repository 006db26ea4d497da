// Package coupon validates discount codes and computes the resulting
// discount on a cart subtotal.
package coupon

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidCoupon is returned when a coupon code is not recognized.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Rule maps a coupon code to a fractional discount rate on the subtotal,
// e.g. 0.10 for 10% off.
type Rule struct {
	Code string
	Rate decimal.Decimal
}

// Discount returns the discount amount for the given subtotal.
func (r Rule) Discount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.Rate)
}

// Validator matches coupon codes case-insensitively against a fixed set of
// rules.
type Validator struct {
	rules map[string]Rule
}

// NewValidator creates a Validator over the given rules.
func NewValidator(rules ...Rule) *Validator {
	byCode := make(map[string]Rule, len(rules))
	for _, r := range rules {
		byCode[strings.ToUpper(r.Code)] = r
	}
	return &Validator{rules: byCode}
}

// Validate looks up the rule for the given code, ignoring letter case.
// Unrecognized codes yield ErrInvalidCoupon and a zero-rate rule.
func (v *Validator) Validate(code string) (Rule, error) {
	r, ok := v.rules[strings.ToUpper(code)]
	if !ok {
		return Rule{}, ErrInvalidCoupon
	}
	return r, nil
}
