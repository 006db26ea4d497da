// Package cart implements the session cart: the in-progress selection of
// catalog items and quantities.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/lucas178/cupcake-shop/internal/domain/catalog"
)

// Entry is a single cart line: an item and the requested quantity.
type Entry struct {
	Item     catalog.Item
	Quantity int
}

// Cart maps item identity to requested quantity, keeping entries in first
// insertion order. Entries are unique by item id and a quantity of zero is
// never stored. The cart is owned by the application controller and is not
// safe for concurrent use.
type Cart struct {
	entries []Entry
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// SetQuantity inserts, replaces or removes the entry for the given item.
// A quantity at or below zero removes an existing entry and is a no-op
// otherwise, so stored quantities are always positive.
func (c *Cart) SetQuantity(item catalog.Item, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			if quantity == 0 {
				c.entries = append(c.entries[:i], c.entries[i+1:]...)
				return
			}
			c.entries[i].Quantity = quantity
			return
		}
	}
	if quantity > 0 {
		c.entries = append(c.entries, Entry{Item: item, Quantity: quantity})
	}
}

// Remove drops the entry for the given item id, if present. Used to keep
// the cart consistent when a catalog item is deleted.
func (c *Cart) Remove(id int64) {
	for i := range c.entries {
		if c.entries[i].Item.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after successful order finalization.
func (c *Cart) Clear() {
	c.entries = nil
}

// Quantity returns the stored quantity for the given item id, zero if absent.
func (c *Cart) Quantity(id int64) int {
	for _, e := range c.entries {
		if e.Item.ID == id {
			return e.Quantity
		}
	}
	return 0
}

// Entries returns a snapshot of the cart lines.
func (c *Cart) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}

// TotalItems returns the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// Subtotal returns the sum of quantity times unit price across all entries.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range c.entries {
		line := e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}
