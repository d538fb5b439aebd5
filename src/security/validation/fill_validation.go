// backend/src/security/validation/fill_validation.go
package validation

import (
	"errors"
	"fmt"

	"github.com/username/optionsjournal/backend/src/models"
)

// ErrValidationFailed is the sentinel wrapped by all fill validation errors
// so handlers can map them to a 400 response with errors.Is.
var ErrValidationFailed = errors.New("fill validation failed")

// ValidateFills checks every fill in a candidate set against the input
// contract: positive quantity, a known side, and option fields present on
// option fills only. The index of the first offending fill is included in
// the error.
func ValidateFills(fills []models.Fill) error {
	for i, fill := range fills {
		if err := validateFill(fill); err != nil {
			return fmt.Errorf("%w: fill %d: %v", ErrValidationFailed, i, err)
		}
	}
	return nil
}

func validateFill(fill models.Fill) error {
	if fill.SecurityType != models.SecurityOption && fill.SecurityType != models.SecurityStock {
		return fmt.Errorf("unknown security type '%s'", fill.SecurityType)
	}
	if fill.Side != models.SideBought && fill.Side != models.SideSold {
		return fmt.Errorf("unknown side '%s'", fill.Side)
	}
	if fill.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", fill.Quantity)
	}

	if fill.SecurityType == models.SecurityStock {
		if fill.OptionType != "" {
			return fmt.Errorf("stock fill must not carry an option type")
		}
		if !fill.Strike.IsZero() {
			return fmt.Errorf("stock fill must not carry a strike")
		}
		if !fill.Expiration.IsZero() {
			return fmt.Errorf("stock fill must not carry an expiration")
		}
		return nil
	}

	if fill.OptionType != models.OptionCall && fill.OptionType != models.OptionPut {
		return fmt.Errorf("option fill has unknown option type '%s'", fill.OptionType)
	}
	if !fill.Strike.IsPositive() {
		return fmt.Errorf("option fill strike must be positive, got %s", fill.Strike)
	}
	if fill.Expiration.IsZero() {
		return fmt.Errorf("option fill is missing an expiration date")
	}
	return nil
}
