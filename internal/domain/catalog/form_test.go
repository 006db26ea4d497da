package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Name:        "Pistache",
		Price:       "11.00",
		Weight:      "130",
		Image:       "🟢",
		Ingredients: "Pistache\nFarinha de trigo\n\nAçúcar",
	}
}

func TestParseForm(t *testing.T) {
	d, err := ParseForm(validForm())
	require.NoError(t, err)

	assert.Equal(t, "Pistache", d.Name)
	assert.True(t, d.Price.Equal(decimal.RequireFromString("11.00")))
	assert.Equal(t, 130, d.Weight)
	assert.Equal(t, "🟢", d.Image)
	// Blank lines in the textarea are skipped.
	assert.Equal(t, []string{"Pistache", "Farinha de trigo", "Açúcar"}, d.Ingredients)
}

func TestParseForm_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
	}{
		{"missing name", func(f *Form) { f.Name = "" }, ErrFormIncomplete},
		{"missing price", func(f *Form) { f.Price = "" }, ErrFormIncomplete},
		{"missing weight", func(f *Form) { f.Weight = "" }, ErrFormIncomplete},
		{"missing image", func(f *Form) { f.Image = "" }, ErrFormIncomplete},
		{"missing ingredients", func(f *Form) { f.Ingredients = "" }, ErrFormIncomplete},
		{"price not a number", func(f *Form) { f.Price = "onze" }, ErrInvalidPrice},
		{"price zero", func(f *Form) { f.Price = "0" }, ErrInvalidPrice},
		{"price negative", func(f *Form) { f.Price = "-1.50" }, ErrInvalidPrice},
		{"weight not a number", func(f *Form) { f.Weight = "cento e trinta" }, ErrInvalidWeight},
		{"weight fractional", func(f *Form) { f.Weight = "130.5" }, ErrInvalidWeight},
		{"weight zero", func(f *Form) { f.Weight = "0" }, ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			_, err := ParseForm(f)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
