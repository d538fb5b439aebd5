package utils

import (
	"fmt"
	"strings"
	"time"
)

// expirationFormats are the layouts brokers commonly use for option
// expiration dates, tried in order.
var expirationFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"20060102",
	"02/01/2006",
}

// ParseExpiration parses an option expiration date, accepting the layouts
// seen across supported broker exports. The result is a bare calendar date.
func ParseExpiration(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty expiration date")
	}
	for _, layout := range expirationFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized expiration date format: '%s'", trimmed)
}
