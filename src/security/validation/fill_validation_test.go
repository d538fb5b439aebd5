package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/optionsjournal/backend/src/models"
)

func validOptionFill() models.Fill {
	exp, _ := time.Parse("2006-01-02", "2026-09-18")
	return models.Fill{
		SecurityType: models.SecurityOption,
		OptionType:   models.OptionCall,
		Strike:       decimal.NewFromInt(100),
		Expiration:   exp,
		Side:         models.SideBought,
		Quantity:     1,
	}
}

func TestValidateFillsAcceptsWellFormedInput(t *testing.T) {
	stock := models.Fill{
		SecurityType: models.SecurityStock,
		Side:         models.SideSold,
		Quantity:     100,
	}
	assert.NoError(t, ValidateFills([]models.Fill{validOptionFill(), stock}))
	assert.NoError(t, ValidateFills(nil))
}

func TestValidateFillsRejectsBadFills(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.Fill)
	}{
		{"zero quantity", func(f *models.Fill) { f.Quantity = 0 }},
		{"negative quantity", func(f *models.Fill) { f.Quantity = -1 }},
		{"unknown side", func(f *models.Fill) { f.Side = "HELD" }},
		{"unknown security type", func(f *models.Fill) { f.SecurityType = "BOND" }},
		{"missing option type", func(f *models.Fill) { f.OptionType = "" }},
		{"zero strike", func(f *models.Fill) { f.Strike = decimal.Zero }},
		{"missing expiration", func(f *models.Fill) { f.Expiration = time.Time{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fill := validOptionFill()
			tc.mutate(&fill)
			err := ValidateFills([]models.Fill{fill})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidationFailed))
		})
	}
}

func TestValidateFillsRejectsOptionFieldsOnStock(t *testing.T) {
	fill := validOptionFill()
	fill.SecurityType = models.SecurityStock
	err := ValidateFills([]models.Fill{fill})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "ibkr", StripUnprintable("ib\x00kr"))
	assert.Equal(t, "a b\tc", StripUnprintable("a b\tc"))
}
