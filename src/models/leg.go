package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Leg is the net position in one distinct option contract, or in the
// underlying stock, after all fills targeting it have been netted.
// OptionType, Strike and Expiration are zero values for the stock leg.
type Leg struct {
	SecurityType SecurityType    `json:"security_type"`
	OptionType   OptionType      `json:"option_type,omitempty"`
	Strike       decimal.Decimal `json:"strike,omitempty"`
	Expiration   time.Time       `json:"expiration,omitempty"`
	NetQuantity  int             `json:"net_quantity"`
}

// IsLong reports whether the leg carries net long exposure.
func (l Leg) IsLong() bool {
	return l.NetQuantity > 0
}

// IsShort reports whether the leg carries net short exposure.
func (l Leg) IsShort() bool {
	return l.NetQuantity < 0
}

// IsStock reports whether this is the synthetic stock leg.
func (l Leg) IsStock() bool {
	return l.SecurityType == SecurityStock
}

// IsCall reports whether the leg is a CALL option leg.
func (l Leg) IsCall() bool {
	return l.SecurityType == SecurityOption && l.OptionType == OptionCall
}

// IsPut reports whether the leg is a PUT option leg.
func (l Leg) IsPut() bool {
	return l.SecurityType == SecurityOption && l.OptionType == OptionPut
}

// SameExpiration reports whether both legs expire on the same calendar day.
func (l Leg) SameExpiration(other Leg) bool {
	return l.Expiration.Format(expirationKeyFmt) == other.Expiration.Format(expirationKeyFmt)
}

// SameStrike compares strikes by value, not representation.
func (l Leg) SameStrike(other Leg) bool {
	return l.Strike.Equal(other.Strike)
}
