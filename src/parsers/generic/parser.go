// backend/src/parsers/generic/parser.go
package generic

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/username/optionsjournal/backend/src/models"
	"github.com/username/optionsjournal/backend/src/utils"
)

// GenericParser reads the documented CSV layout:
//
//	security_type,option_type,strike,expiration,side,quantity
//
// security_type is OPTION or STOCK; option_type, strike and expiration are
// required for OPTION rows and must be empty for STOCK rows; side is
// BOUGHT/BUY or SOLD/SELL; quantity is a positive integer.
type GenericParser struct{}

func NewParser() *GenericParser {
	return &GenericParser{}
}

const expectedColumns = 6

func (p *GenericParser) Parse(file io.Reader) ([]models.Fill, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("generic parser: failed to read CSV header: %w", err)
	}
	if len(header) < expectedColumns {
		return nil, fmt.Errorf("generic parser: expected %d columns, got %d", expectedColumns, len(header))
	}

	var fills []models.Fill
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("generic parser: failed to read CSV record: %w", err)
		}
		line++
		if isBlankRecord(record) {
			continue
		}
		if len(record) < expectedColumns {
			return nil, fmt.Errorf("generic parser: line %d: expected %d columns, got %d", line, expectedColumns, len(record))
		}

		fill, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("generic parser: line %d: %w", line, err)
		}
		fills = append(fills, fill)
	}
	return fills, nil
}

func parseRecord(record []string) (models.Fill, error) {
	securityType, err := parseSecurityType(record[0])
	if err != nil {
		return models.Fill{}, err
	}

	side, err := parseSide(record[4])
	if err != nil {
		return models.Fill{}, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil {
		return models.Fill{}, fmt.Errorf("invalid quantity '%s': %w", record[5], err)
	}

	fill := models.Fill{
		SecurityType: securityType,
		Side:         side,
		Quantity:     quantity,
	}
	if securityType == models.SecurityStock {
		return fill, nil
	}

	optionType, err := parseOptionType(record[1])
	if err != nil {
		return models.Fill{}, err
	}
	strike, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return models.Fill{}, fmt.Errorf("invalid strike '%s': %w", record[2], err)
	}
	expiration, err := utils.ParseExpiration(record[3])
	if err != nil {
		return models.Fill{}, err
	}

	fill.OptionType = optionType
	fill.Strike = strike
	fill.Expiration = expiration
	return fill, nil
}

func parseSecurityType(value string) (models.SecurityType, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OPTION", "OPT":
		return models.SecurityOption, nil
	case "STOCK", "STK":
		return models.SecurityStock, nil
	default:
		return "", fmt.Errorf("unknown security type '%s'", value)
	}
}

func parseOptionType(value string) (models.OptionType, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "CALL", "C":
		return models.OptionCall, nil
	case "PUT", "P":
		return models.OptionPut, nil
	default:
		return "", fmt.Errorf("unknown option type '%s'", value)
	}
}

func parseSide(value string) (models.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "BOUGHT", "BUY":
		return models.SideBought, nil
	case "SOLD", "SELL":
		return models.SideSold, nil
	default:
		return "", fmt.Errorf("unknown side '%s'", value)
	}
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
