// Package app wires the storefront together: it owns the catalog store,
// the session cart, the order ledger, the admin gate and the navigator,
// and funnels every mutation through controller methods. Views receive the
// controller, never independent copies of state.
package app

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lucas178/cupcake-shop/internal/domain/auth"
	"github.com/lucas178/cupcake-shop/internal/domain/cart"
	"github.com/lucas178/cupcake-shop/internal/domain/catalog"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
	"github.com/lucas178/cupcake-shop/internal/domain/coupon"
	"github.com/lucas178/cupcake-shop/internal/domain/order"
	"github.com/lucas178/cupcake-shop/internal/nav"
)

// App is the top-level application controller and the single owner of all
// process-wide state.
type App struct {
	Catalog *catalog.Store
	Cart    *cart.Cart
	Ledger  *order.Ledger
	Gate    *auth.Gate
	Nav     *nav.Navigator
	Coupons *coupon.Validator
	Orders  *order.Service

	cfg *Config
	lg  *zap.Logger
}

// New builds the controller from the configuration: seeded catalog, empty
// cart and ledger, the coupon rule set and the admin gate.
func New(cfg *Config, lg *zap.Logger) (*App, error) {
	fee, err := cfg.deliveryFee()
	if err != nil {
		return nil, err
	}
	rate, err := cfg.promoRate()
	if err != nil {
		return nil, err
	}

	c := cart.New()
	ledger := order.NewLedger()
	gate := auth.NewGate(cfg.AdminUser, cfg.AdminPass)

	return &App{
		Catalog: catalog.NewStore(catalog.Seed()...),
		Cart:    c,
		Ledger:  ledger,
		Gate:    gate,
		Nav:     nav.New(gate, cfg.LongPress),
		Coupons: coupon.NewValidator(coupon.Rule{Code: cfg.PromoCode, Rate: rate}),
		Orders:  order.NewService(c, ledger, fee),
		cfg:     cfg,
		lg:      lg,
	}, nil
}

// PixKey returns the static Pix payment key shown at checkout.
func (a *App) PixKey() string {
	return a.cfg.PixKey
}

// UpdateCart sets the quantity for an item; zero removes the entry.
func (a *App) UpdateCart(item catalog.Item, quantity int) {
	a.Cart.SetQuantity(item, quantity)
}

// AddItem validates the admin form and appends a new catalog item.
func (a *App) AddItem(form catalog.Form) (catalog.Item, error) {
	draft, err := catalog.ParseForm(form)
	if err != nil {
		return catalog.Item{}, err
	}
	it := a.Catalog.Add(draft)
	a.lg.Info("catalog item added", zap.Int64("id", it.ID), zap.String("name", it.Name))
	return it, nil
}

// UpdateItem validates the admin form and replaces the item with the given
// id, preserving its existing reviews.
func (a *App) UpdateItem(id int64, form catalog.Form) error {
	draft, err := catalog.ParseForm(form)
	if err != nil {
		return err
	}
	existing, err := a.Catalog.Get(id)
	if err != nil {
		return errors.Wrap(err, "update item")
	}
	it := catalog.Item{
		ID:          id,
		Name:        draft.Name,
		Price:       draft.Price,
		Image:       draft.Image,
		Weight:      draft.Weight,
		Ingredients: draft.Ingredients,
		Reviews:     existing.Reviews,
	}
	if err := a.Catalog.Update(it); err != nil {
		return err
	}
	a.lg.Info("catalog item updated", zap.Int64("id", id), zap.String("name", it.Name))
	return nil
}

// DeleteItem removes a catalog item and purges any cart entry referencing
// it, keeping the cross-component invariant that the cart never references
// a deleted item.
func (a *App) DeleteItem(id int64) error {
	if err := a.Catalog.Delete(id); err != nil {
		return err
	}
	a.Cart.Remove(id)
	a.lg.Info("catalog item deleted", zap.Int64("id", id))
	return nil
}

// ApplyCoupon validates a coupon code. Unrecognized codes return
// coupon.ErrInvalidCoupon and a zero-rate rule.
func (a *App) ApplyCoupon(code string) (coupon.Rule, error) {
	return a.Coupons.Validate(code)
}

// Totals computes the live price breakdown for the cart under the given
// discount rate.
func (a *App) Totals(rate decimal.Decimal) checkout.Totals {
	return a.Orders.Totals(rate)
}

// PlaceOrder finalizes the checkout. On success it logs the order, moves to
// the confirmation screen and returns the order.
func (a *App) PlaceOrder(req order.PlaceRequest) (*order.Order, error) {
	o, err := a.Orders.Place(req)
	if err != nil {
		return nil, err
	}
	a.lg.Info("order placed",
		zap.String("id", o.ID),
		zap.String("total", o.Total.String()),
		zap.String("payment", o.PaymentMethod),
	)
	a.Nav.Go(nav.ScreenOrderSuccess)
	return o, nil
}

// Login runs the admin gate. Success navigates to the admin screen; failure
// leaves the navigator alone and the caller shows a generic error.
func (a *App) Login(user, pass string) bool {
	if !a.Gate.Login(user, pass) {
		a.lg.Warn("admin login failed", zap.String("user", user))
		return false
	}
	a.lg.Info("admin login succeeded", zap.String("user", user))
	a.Nav.Go(nav.ScreenAdmin)
	return true
}

// Logout clears the admin session and returns to the home screen.
func (a *App) Logout() {
	a.Gate.Logout()
	a.Nav.Go(nav.ScreenHome)
	a.lg.Info("admin logged out")
}
