// Package order holds finalized orders and the placement service that
// turns a cart plus a validated checkout form into a ledger entry.
package order

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucas178/cupcake-shop/internal/domain/catalog"
	"github.com/lucas178/cupcake-shop/internal/domain/checkout"
)

// Line is a snapshot of a cart entry at the moment the order was placed.
type Line struct {
	Item     catalog.Item
	Quantity int
}

// LineTotal returns quantity times the snapshotted unit price.
func (l Line) LineTotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ChangeDetails records the cash-change request of a cash-on-delivery
// order. For is set only when NeedsChange is true.
type ChangeDetails struct {
	NeedsChange bool
	For         decimal.Decimal
}

// Order is an immutable finalized checkout. Once created it never changes;
// it lives in the ledger until the process ends.
type Order struct {
	ID            string
	Date          time.Time
	Items         []Line
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CouponCode    string
	PaymentMethod string
	Customer      checkout.Customer
	Address       checkout.Address
	Change        *ChangeDetails
}

// Ledger is the append-only, newest-first order history for the session.
// No deduplication, no capacity bound, no persistence.
type Ledger struct {
	mu     sync.RWMutex
	orders []Order
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append prepends the order so the list stays most-recent-first.
func (l *Ledger) Append(o Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]Order{o}, l.orders...)
}

// List returns a snapshot of all orders, newest first.
func (l *Ledger) List() []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Order(nil), l.orders...)
}

// Latest returns the most recently placed order, or nil when the ledger is
// empty.
func (l *Ledger) Latest() *Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.orders) == 0 {
		return nil
	}
	o := l.orders[0]
	return &o
}

// Len returns the number of orders in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
