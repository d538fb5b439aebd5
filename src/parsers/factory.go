// backend/src/parsers/factory.go
package parsers

import (
	"fmt"

	"github.com/username/optionsjournal/backend/src/parsers/generic"
	"github.com/username/optionsjournal/backend/src/parsers/ibkr"
)

func GetParser(source string) (Parser, error) {
	switch source {
	case "generic":
		return generic.NewParser(), nil
	case "ibkr":
		return ibkr.NewParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for source: %s", source)
	}
}
