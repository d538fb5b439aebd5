package ibkr

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/optionsjournal/backend/src/models"
)

const sampleFlexQuery = `<FlexQueryResponse queryName="executions" type="AF">
  <FlexStatements count="1">
    <FlexStatement accountId="U1234567">
      <Trades>
        <Trade assetCategory="OPT" symbol="AAPL  260918C00100000" tradeDate="20260810" quantity="1" buySell="BUY" strike="100" expiry="20260918" putCall="C" ibOrderID="1"/>
        <Trade assetCategory="OPT" symbol="AAPL  260918P00092500" tradeDate="20260810" quantity="-2" buySell="SELL" strike="92.5" expiry="20260918" putCall="P" ibOrderID="2"/>
        <Trade assetCategory="STK" symbol="AAPL" tradeDate="20260810" quantity="100" buySell="BUY" ibOrderID="3"/>
        <Trade assetCategory="CASH" symbol="EUR.USD" tradeDate="20260810" quantity="1000" buySell="BUY" ibOrderID="4"/>
      </Trades>
    </FlexStatement>
  </FlexStatements>
</FlexQueryResponse>`

func TestParseFlexQuery(t *testing.T) {
	fills, err := NewParser().Parse(strings.NewReader(sampleFlexQuery))
	require.NoError(t, err)
	require.Len(t, fills, 3) // the CASH row is skipped

	assert.Equal(t, models.SecurityOption, fills[0].SecurityType)
	assert.Equal(t, models.OptionCall, fills[0].OptionType)
	assert.True(t, fills[0].Strike.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2026-09-18", fills[0].Expiration.Format("2006-01-02"))
	assert.Equal(t, models.SideBought, fills[0].Side)
	assert.Equal(t, 1, fills[0].Quantity)

	// Sell quantities come through negative in Flex reports; the fill keeps
	// a positive quantity and the SOLD side.
	assert.Equal(t, models.OptionPut, fills[1].OptionType)
	assert.Equal(t, models.SideSold, fills[1].Side)
	assert.Equal(t, 2, fills[1].Quantity)

	assert.Equal(t, models.SecurityStock, fills[2].SecurityType)
	assert.Equal(t, 100, fills[2].Quantity)
}

func TestParseSkipsBadTrades(t *testing.T) {
	xml := `<FlexQueryResponse><FlexStatements count="1"><FlexStatement accountId="U1">
      <Trades>
        <Trade assetCategory="OPT" quantity="1" buySell="BUY" strike="100" expiry="20260918" putCall="X" ibOrderID="1"/>
        <Trade assetCategory="STK" quantity="0" buySell="BUY" ibOrderID="2"/>
        <Trade assetCategory="STK" quantity="50" buySell="SELL" ibOrderID="3"/>
      </Trades>
    </FlexStatement></FlexStatements></FlexQueryResponse>`

	fills, err := NewParser().Parse(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, models.SideSold, fills[0].Side)
	assert.Equal(t, 50, fills[0].Quantity)
}

func TestParseInvalidXML(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader("not xml"))
	assert.Error(t, err)
}
