package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucas178/cupcake-shop/internal/domain/cart"
	"github.com/lucas178/cupcake-shop/internal/domain/catalog"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(c *cart.Cart, l *Ledger) *Service {
	svc := NewService(c, l, decimal.RequireFromString("5.00"))
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newTestItem(id int64, name, price string) catalog.Item {
	return catalog.Item{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func filledCart() *cart.Cart {
	c := cart.New()
	c.SetQuantity(newTestItem(1, "Chocolate Belga", "8.50"), 2)
	c.SetQuantity(newTestItem(2, "Nutella", "9.00"), 1)
	return c
}

func pixForm() checkout.Form {
	return checkout.Form{
		Customer: checkout.Customer{
			Name:  "Maria Silva",
			Email: "maria@example.com",
			Phone: "(11) 98765-4321",
		},
		Address: checkout.Address{
			Street: "Rua das Flores",
			Number: "123",
			City:   "São Paulo",
			State:  "SP",
			Zip:    "01234-567",
		},
		Method: checkout.MethodPix,
	}
}

func TestPlace_EmptyCart(t *testing.T) {
	svc := newTestService(cart.New(), NewLedger())

	_, err := svc.Place(PlaceRequest{Form: pixForm()})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlace_WithCoupon(t *testing.T) {
	c := filledCart()
	l := NewLedger()
	svc := newTestService(c, l)

	o, err := svc.Place(PlaceRequest{
		Form:         pixForm(),
		CouponCode:   "PROMO10",
		DiscountRate: decimal.RequireFromString("0.10"),
	})
	require.NoError(t, err)

	// 2x8.50 + 1x9.00 = 26.00, minus 10% plus 5.00 delivery = 28.40.
	assert.True(t, o.Subtotal.Equal(decimal.RequireFromString("26.00")))
	assert.True(t, o.Discount.Equal(decimal.RequireFromString("2.60")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("28.40")))
	assert.Equal(t, "PROMO10", o.CouponCode)
	assert.Equal(t, "order-1749988800000", o.ID)
	assert.Equal(t, fixedNow, o.Date)
	assert.Equal(t, "Pix", o.PaymentMethod)
	assert.Nil(t, o.Change)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Chocolate Belga", o.Items[0].Item.Name)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.True(t, o.Items[0].LineTotal().Equal(decimal.RequireFromString("17.00")))

	// The cart is emptied and the ledger holds the order.
	assert.True(t, c.Empty())
	assert.Equal(t, 1, l.Len())
}

func TestPlace_NoCoupon(t *testing.T) {
	svc := newTestService(filledCart(), NewLedger())

	o, err := svc.Place(PlaceRequest{Form: pixForm()})
	require.NoError(t, err)

	assert.True(t, o.Discount.IsZero())
	assert.True(t, o.Total.Equal(decimal.RequireFromString("31.00")))
	assert.Empty(t, o.CouponCode)
}

func TestPlace_InvalidFormLeavesStateAlone(t *testing.T) {
	c := filledCart()
	l := NewLedger()
	svc := newTestService(c, l)

	f := pixForm()
	f.Address.Street = ""

	_, err := svc.Place(PlaceRequest{Form: f})
	var serr *checkout.SectionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, checkout.SectionAddress, serr.Section)

	// A failed validation must not touch the ledger or the cart.
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 3, c.TotalItems())
}

func TestPlace_CashWithChange(t *testing.T) {
	svc := newTestService(filledCart(), NewLedger())

	needs := true
	f := pixForm()
	f.Method = checkout.MethodCash
	f.NeedsChange = &needs
	f.ChangeFor = "50"

	o, err := svc.Place(PlaceRequest{Form: f})
	require.NoError(t, err)

	require.NotNil(t, o.Change)
	assert.True(t, o.Change.NeedsChange)
	assert.True(t, o.Change.For.Equal(decimal.NewFromInt(50)))
}

func TestPlace_CashWithoutChange(t *testing.T) {
	svc := newTestService(filledCart(), NewLedger())

	needs := false
	f := pixForm()
	f.Method = checkout.MethodCash
	f.NeedsChange = &needs

	o, err := svc.Place(PlaceRequest{Form: f})
	require.NoError(t, err)

	require.NotNil(t, o.Change)
	assert.False(t, o.Change.NeedsChange)
	assert.True(t, o.Change.For.IsZero())
}

func TestPlace_CashChangeMustExceedTotal(t *testing.T) {
	svc := newTestService(filledCart(), NewLedger())

	needs := true
	f := pixForm()
	f.Method = checkout.MethodCash
	f.NeedsChange = &needs
	f.ChangeFor = "31.00" // equals the total

	_, err := svc.Place(PlaceRequest{Form: f})
	var serr *checkout.SectionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, checkout.SectionPaymentDetails, serr.Section)
}

func TestTotals(t *testing.T) {
	svc := newTestService(filledCart(), NewLedger())

	totals := svc.Totals(decimal.RequireFromString("0.10"))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("28.40")))

	totals = svc.Totals(decimal.Zero)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("31.00")))
}

func TestLedger_NewestFirst(t *testing.T) {
	l := NewLedger()
	require.Nil(t, l.Latest())

	l.Append(Order{ID: "order-1"})
	l.Append(Order{ID: "order-2"})
	l.Append(Order{ID: "order-3"})

	list := l.List()
	require.Len(t, list, 3)
	assert.Equal(t, "order-3", list[0].ID)
	assert.Equal(t, "order-1", list[2].ID)
	assert.Equal(t, "order-3", l.Latest().ID)
}
