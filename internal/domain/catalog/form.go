package catalog

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Form-level validation errors for the admin item editor. The messages are
// shown inline next to the form.
var (
	ErrFormIncomplete = errors.New("Todos os campos são obrigatórios.")
	ErrInvalidPrice   = errors.New("O preço deve ser um número válido.")
	ErrInvalidWeight  = errors.New("O peso deve ser um número válido.")
)

// Form holds the raw text fields of the admin item editor.
type Form struct {
	Name        string
	Price       string
	Weight      string
	Image       string
	Ingredients string // one ingredient per line
}

// ParseForm validates the raw form and converts it into a Draft.
// All fields are required, price must be a positive number, weight a
// positive integer, and the ingredients textarea is split into one
// ingredient per non-blank line.
func ParseForm(f Form) (Draft, error) {
	if f.Name == "" || f.Price == "" || f.Image == "" || f.Ingredients == "" || f.Weight == "" {
		return Draft{}, ErrFormIncomplete
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.IsPositive() {
		return Draft{}, ErrInvalidPrice
	}

	weight, err := strconv.Atoi(strings.TrimSpace(f.Weight))
	if err != nil || weight <= 0 {
		return Draft{}, ErrInvalidWeight
	}

	var ingredients []string
	for _, line := range strings.Split(f.Ingredients, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return Draft{
		Name:        f.Name,
		Price:       price,
		Image:       f.Image,
		Weight:      weight,
		Ingredients: ingredients,
	}, nil
}
