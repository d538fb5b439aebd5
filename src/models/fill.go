package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SecurityType distinguishes option contracts from the underlying stock.
type SecurityType string

const (
	SecurityOption SecurityType = "OPTION"
	SecurityStock  SecurityType = "STOCK"
)

// OptionType is the contract right. Present only on OPTION fills.
type OptionType string

const (
	OptionCall OptionType = "CALL"
	OptionPut  OptionType = "PUT"
)

// Side is the direction of an individual fill as reported by the broker.
type Side string

const (
	SideBought Side = "BOUGHT"
	SideSold   Side = "SOLD"
)

// Fill represents a single broker-reported execution for one contract or
// for the underlying stock. Strike and Expiration are only meaningful when
// SecurityType is OPTION.
type Fill struct {
	SecurityType SecurityType    `json:"security_type"`
	OptionType   OptionType      `json:"option_type,omitempty"`
	Strike       decimal.Decimal `json:"strike,omitempty"`
	Expiration   time.Time       `json:"expiration,omitempty"`
	Side         Side            `json:"side"`
	Quantity     int             `json:"quantity"`
}

// IsOption reports whether the fill is for an option contract.
func (f Fill) IsOption() bool {
	return f.SecurityType == SecurityOption
}

// SignedQuantity returns the fill quantity with the sign implied by its
// side: positive for BOUGHT, negative for SOLD.
func (f Fill) SignedQuantity() int {
	if f.Side == SideSold {
		return -f.Quantity
	}
	return f.Quantity
}

// ContractKey is the value identity of an option contract. Two fills with
// the same key target the same leg and must be netted together. The strike
// and expiration are normalized to strings so the key is comparable and
// immune to representation differences ("100" vs "100.00").
type ContractKey struct {
	OptionType OptionType
	Strike     string
	Expiration string
}

const (
	strikeKeyPlaces  = 4
	expirationKeyFmt = "2006-01-02"
)

// ContractKeyOf derives the contract key for an OPTION fill.
func ContractKeyOf(f Fill) ContractKey {
	return ContractKey{
		OptionType: f.OptionType,
		Strike:     f.Strike.StringFixed(strikeKeyPlaces),
		Expiration: f.Expiration.Format(expirationKeyFmt),
	}
}
