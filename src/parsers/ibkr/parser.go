package ibkr

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/models"
	"github.com/username/optionsjournal/backend/src/utils"
)

// --- XML Data Structures ---

// FlexQueryResponse is the root element of the IBKR Flex Query report.
type FlexQueryResponse struct {
	XMLName        xml.Name        `xml:"FlexQueryResponse"`
	FlexStatements []FlexStatement `xml:"FlexStatements>FlexStatement"`
}

// FlexStatement contains all the data for a given account and period.
type FlexStatement struct {
	XMLName   xml.Name `xml:"FlexStatement"`
	AccountId string   `xml:"accountId,attr"`
	Trades    []Trade  `xml:"Trades>Trade"`
}

// Trade represents a stock or option execution.
type Trade struct {
	AssetCategory string  `xml:"assetCategory,attr"`
	Symbol        string  `xml:"symbol,attr"`
	Description   string  `xml:"description,attr"`
	TradeDate     string  `xml:"tradeDate,attr"`
	Quantity      float64 `xml:"quantity,attr"`
	BuySell       string  `xml:"buySell,attr"`
	Strike        string  `xml:"strike,attr"` // For Options
	Expiry        string  `xml:"expiry,attr"` // For Options
	PutCall       string  `xml:"putCall,attr"`
	IBOrderID     string  `xml:"ibOrderID,attr"`
}

// --- IBKR Parser Implementation ---

// IBKRParser implements the parsers.Parser interface for IBKR Flex Query XML files.
type IBKRParser struct{}

// NewParser creates a new instance of the IBKRParser.
func NewParser() *IBKRParser {
	return &IBKRParser{}
}

// Parse reads an IBKR Flex Query XML file and converts its stock and option
// trade rows into fills. Other asset categories and cash rows are skipped;
// they carry no information the classifier uses.
func (p *IBKRParser) Parse(file io.Reader) ([]models.Fill, error) {
	var response FlexQueryResponse
	decoder := xml.NewDecoder(file)
	if err := decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("ibkr parser: failed to decode XML: %w", err)
	}

	var fills []models.Fill
	for _, stmt := range response.FlexStatements {
		for _, trade := range stmt.Trades {
			if trade.AssetCategory != "STK" && trade.AssetCategory != "OPT" {
				continue
			}
			fill, err := p.processTrade(trade)
			if err != nil {
				if logger.L != nil {
					logger.L.Warn("IBKR Parser: Skipping trade due to processing error", "ibOrderID", trade.IBOrderID, "error", err)
				}
				continue
			}
			fills = append(fills, fill)
		}
	}
	return fills, nil
}

// processTrade converts an IBKR Trade record to a Fill.
func (p *IBKRParser) processTrade(trade Trade) (models.Fill, error) {
	side, err := parseBuySell(trade.BuySell)
	if err != nil {
		return models.Fill{}, err
	}

	quantity := int(math.Abs(trade.Quantity))
	if quantity == 0 {
		return models.Fill{}, fmt.Errorf("trade has zero quantity")
	}

	fill := models.Fill{
		Side:     side,
		Quantity: quantity,
	}

	if trade.AssetCategory == "STK" {
		fill.SecurityType = models.SecurityStock
		return fill, nil
	}

	fill.SecurityType = models.SecurityOption
	switch trade.PutCall {
	case "C":
		fill.OptionType = models.OptionCall
	case "P":
		fill.OptionType = models.OptionPut
	default:
		return models.Fill{}, fmt.Errorf("option trade with unknown putCall '%s'", trade.PutCall)
	}

	strike, err := decimal.NewFromString(strings.TrimSpace(trade.Strike))
	if err != nil {
		return models.Fill{}, fmt.Errorf("invalid option strike '%s': %w", trade.Strike, err)
	}
	fill.Strike = strike

	expiration, err := utils.ParseExpiration(trade.Expiry)
	if err != nil {
		return models.Fill{}, fmt.Errorf("invalid option expiry: %w", err)
	}
	fill.Expiration = expiration

	return fill, nil
}

// parseBuySell maps IBKR's buySell attribute to a fill side. Cancellation
// rows ("BUY (Ca.)") are rejected rather than guessed at.
func parseBuySell(value string) (models.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "BUY":
		return models.SideBought, nil
	case "SELL":
		return models.SideSold, nil
	default:
		return "", fmt.Errorf("unknown buySell value '%s'", value)
	}
}
