package processors

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/optionsjournal/backend/src/models"
)

func expDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func optionFill(t *testing.T, optType models.OptionType, strike float64, exp string, side models.Side, qty int) models.Fill {
	t.Helper()
	return models.Fill{
		SecurityType: models.SecurityOption,
		OptionType:   optType,
		Strike:       decimal.NewFromFloat(strike),
		Expiration:   expDate(t, exp),
		Side:         side,
		Quantity:     qty,
	}
}

func stockFill(side models.Side, qty int) models.Fill {
	return models.Fill{
		SecurityType: models.SecurityStock,
		Side:         side,
		Quantity:     qty,
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	legs := NewLegAggregator().Aggregate(nil)
	assert.Empty(t, legs)
}

func TestAggregateNetsFillsPerContract(t *testing.T) {
	agg := NewLegAggregator()
	legs := agg.Aggregate([]models.Fill{
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 3),
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideSold, 1),
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 2),
	})

	require.Len(t, legs, 1)
	assert.Equal(t, 4, legs[0].NetQuantity)
	assert.True(t, legs[0].IsLong())
	assert.True(t, legs[0].IsCall())
}

func TestAggregateDropsZeroNetLegs(t *testing.T) {
	agg := NewLegAggregator()
	legs := agg.Aggregate([]models.Fill{
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 1),
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideSold, 1),
	})
	assert.Empty(t, legs)
}

func TestAggregateDistinguishesContracts(t *testing.T) {
	agg := NewLegAggregator()
	legs := agg.Aggregate([]models.Fill{
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 1),
		optionFill(t, models.OptionPut, 100, "2026-09-18", models.SideBought, 1),
		optionFill(t, models.OptionCall, 100, "2026-10-16", models.SideBought, 1),
		optionFill(t, models.OptionCall, 110, "2026-09-18", models.SideBought, 1),
	})
	// Same strike but different type, expiration or strike are distinct legs.
	assert.Len(t, legs, 4)
}

func TestAggregateStrikeRepresentationDoesNotSplitLegs(t *testing.T) {
	agg := NewLegAggregator()
	a := optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 1)
	b := optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideSold, 2)
	b.Strike = decimal.RequireFromString("100.00")

	legs := agg.Aggregate([]models.Fill{a, b})
	require.Len(t, legs, 1)
	assert.Equal(t, -1, legs[0].NetQuantity)
}

func TestAggregateStockLeg(t *testing.T) {
	agg := NewLegAggregator()

	legs := agg.Aggregate([]models.Fill{
		stockFill(models.SideBought, 100),
		stockFill(models.SideSold, 40),
	})
	require.Len(t, legs, 1)
	assert.True(t, legs[0].IsStock())
	assert.Equal(t, 60, legs[0].NetQuantity)

	flat := agg.Aggregate([]models.Fill{
		stockFill(models.SideBought, 100),
		stockFill(models.SideSold, 100),
	})
	assert.Empty(t, flat)

	short := agg.Aggregate([]models.Fill{stockFill(models.SideSold, 50)})
	require.Len(t, short, 1)
	assert.True(t, short[0].IsShort())
}

func TestAggregateOrderIndependence(t *testing.T) {
	fills := []models.Fill{
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideBought, 1),
		optionFill(t, models.OptionCall, 110, "2026-09-18", models.SideSold, 1),
		optionFill(t, models.OptionPut, 95, "2026-09-18", models.SideSold, 2),
		stockFill(models.SideBought, 100),
		optionFill(t, models.OptionPut, 95, "2026-09-18", models.SideBought, 1),
	}

	agg := NewLegAggregator()
	expected := agg.Aggregate(fills)

	reversed := make([]models.Fill, len(fills))
	for i, f := range fills {
		reversed[len(fills)-1-i] = f
	}
	rotated := append(append([]models.Fill{}, fills[2:]...), fills[:2]...)

	assert.Equal(t, expected, agg.Aggregate(reversed))
	assert.Equal(t, expected, agg.Aggregate(rotated))
}

func TestAggregateStockLegIsLast(t *testing.T) {
	agg := NewLegAggregator()
	legs := agg.Aggregate([]models.Fill{
		stockFill(models.SideBought, 10),
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideSold, 1),
	})
	require.Len(t, legs, 2)
	assert.True(t, legs[0].IsCall())
	assert.True(t, legs[1].IsStock())
}

func TestSplitLegs(t *testing.T) {
	agg := NewLegAggregator()
	legs := agg.Aggregate([]models.Fill{
		optionFill(t, models.OptionCall, 100, "2026-09-18", models.SideSold, 1),
		stockFill(models.SideBought, 100),
	})

	optionLegs, stockLeg := SplitLegs(legs)
	require.Len(t, optionLegs, 1)
	require.NotNil(t, stockLeg)
	assert.Equal(t, 100, stockLeg.NetQuantity)

	optionLegs, stockLeg = SplitLegs(optionLegs)
	assert.Len(t, optionLegs, 1)
	assert.Nil(t, stockLeg)
}
