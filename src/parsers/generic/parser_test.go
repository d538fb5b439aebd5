package generic

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/optionsjournal/backend/src/models"
)

const sampleCSV = `security_type,option_type,strike,expiration,side,quantity
OPTION,CALL,100,2026-09-18,BOUGHT,1
OPTION,PUT,92.50,2026-09-18,SOLD,2
STOCK,,,,BUY,100

`

func TestParseSampleCSV(t *testing.T) {
	fills, err := NewParser().Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, fills, 3)

	assert.Equal(t, models.SecurityOption, fills[0].SecurityType)
	assert.Equal(t, models.OptionCall, fills[0].OptionType)
	assert.True(t, fills[0].Strike.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2026-09-18", fills[0].Expiration.Format("2006-01-02"))
	assert.Equal(t, models.SideBought, fills[0].Side)
	assert.Equal(t, 1, fills[0].Quantity)

	assert.Equal(t, models.OptionPut, fills[1].OptionType)
	assert.True(t, fills[1].Strike.Equal(decimal.RequireFromString("92.5")))
	assert.Equal(t, models.SideSold, fills[1].Side)
	assert.Equal(t, 2, fills[1].Quantity)

	assert.Equal(t, models.SecurityStock, fills[2].SecurityType)
	assert.Equal(t, models.SideBought, fills[2].Side)
	assert.Equal(t, 100, fills[2].Quantity)
}

func TestParseAcceptsSideAndTypeAliases(t *testing.T) {
	csv := "security_type,option_type,strike,expiration,side,quantity\n" +
		"OPT,C,105,20260918,SELL,1\n"
	fills, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, models.OptionCall, fills[0].OptionType)
	assert.Equal(t, models.SideSold, fills[0].Side)
	assert.Equal(t, "2026-09-18", fills[0].Expiration.Format("2006-01-02"))
}

func TestParseRejectsMalformedRows(t *testing.T) {
	header := "security_type,option_type,strike,expiration,side,quantity\n"

	tests := []struct {
		name string
		row  string
	}{
		{"unknown security type", "BOND,,,,BUY,1"},
		{"unknown side", "OPTION,CALL,100,2026-09-18,HELD,1"},
		{"bad strike", "OPTION,CALL,abc,2026-09-18,BUY,1"},
		{"bad expiration", "OPTION,CALL,100,someday,BUY,1"},
		{"bad quantity", "OPTION,CALL,100,2026-09-18,BUY,one"},
		{"missing columns", "OPTION,CALL,100"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().Parse(strings.NewReader(header + tc.row + "\n"))
			assert.Error(t, err)
		})
	}
}

func TestParseMissingHeader(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader(""))
	assert.Error(t, err)
}
