package order

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/lucas178/cupcake-shop/internal/domain/cart"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
)

// ErrEmptyCart is returned when checkout is attempted with no cart entries.
// The UI redirects to the catalog instead of showing the form.
var ErrEmptyCart = errors.New("cart is empty")

// PlaceRequest holds the input for finalizing an order. DiscountRate is the
// rate of the coupon the user already applied (zero when none); the coupon
// itself was validated at apply time.
type PlaceRequest struct {
	Form         checkout.Form
	CouponCode   string
	DiscountRate decimal.Decimal
}

// Service finalizes orders: it validates the checkout form against the live
// totals, snapshots the cart into an immutable Order, appends it to the
// ledger and clears the cart.
type Service struct {
	cart   *cart.Cart
	ledger *Ledger
	fee    decimal.Decimal
	now    func() time.Time
}

// NewService creates a Service over the session cart and ledger. fee is the
// flat delivery fee added to every order.
func NewService(c *cart.Cart, l *Ledger, fee decimal.Decimal) *Service {
	return &Service{cart: c, ledger: l, fee: fee, now: time.Now}
}

// DeliveryFee returns the flat delivery fee.
func (s *Service) DeliveryFee() decimal.Decimal {
	return s.fee
}

// Totals computes the current price breakdown for the cart under the given
// discount rate.
func (s *Service) Totals(rate decimal.Decimal) checkout.Totals {
	return checkout.ComputeTotals(s.cart.Subtotal(), rate, s.fee)
}

// Place validates the form and, on success, appends the finalized order to
// the ledger and clears the cart. Validation failures come back as
// *checkout.SectionError so the UI can re-open the failing section; the
// ledger is untouched in that case.
func (s *Service) Place(req PlaceRequest) (*Order, error) {
	if s.cart.Empty() {
		return nil, ErrEmptyCart
	}

	totals := s.Totals(req.DiscountRate)
	if serr := checkout.Validate(req.Form, totals.Total, s.now()); serr != nil {
		return nil, serr
	}

	entries := s.cart.Entries()
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, Line{Item: e.Item, Quantity: e.Quantity})
	}

	var change *ChangeDetails
	if req.Form.Method == checkout.MethodCash {
		amount, needs := req.Form.ChangeAmount()
		change = &ChangeDetails{NeedsChange: needs, For: amount}
	}

	now := s.now()
	o := Order{
		ID:            fmt.Sprintf("order-%d", now.UnixMilli()),
		Date:          now,
		Items:         lines,
		Subtotal:      totals.Subtotal.Round(2),
		Discount:      totals.Discount.Round(2),
		Total:         totals.Total.Round(2),
		CouponCode:    req.CouponCode,
		PaymentMethod: string(req.Form.Method),
		Customer:      req.Form.Customer,
		Address:       req.Form.Address,
		Change:        change,
	}

	s.ledger.Append(o)
	s.cart.Clear()
	return &o, nil
}
