// Package catalog holds the product catalog: the cupcakes available for
// purchase and the in-memory store that owns them.
package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested catalog item does not exist.
var ErrNotFound = errors.New("item not found")

// ItemNotFoundError indicates a mutation referenced an item that is not in
// the catalog.
type ItemNotFoundError struct {
	ID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ID)
}

func (e *ItemNotFoundError) Unwrap() error { return ErrNotFound }

// Review is a customer review attached to a catalog item.
type Review struct {
	User    string
	Rating  int
	Comment string
}

// Item is a purchasable catalog entry.
type Item struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Image       string
	Weight      int // grams
	Ingredients []string
	Reviews     []Review
}

// Draft holds the fields of an item before it receives an identity.
// Reviews start empty; the store assigns the ID.
type Draft struct {
	Name        string
	Price       decimal.Decimal
	Image       string
	Weight      int
	Ingredients []string
}

func (i Item) clone() Item {
	cp := i
	cp.Ingredients = append([]string(nil), i.Ingredients...)
	cp.Reviews = append([]Review(nil), i.Reviews...)
	return cp
}
