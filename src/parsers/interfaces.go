package parsers

import (
	"io"

	"github.com/username/optionsjournal/backend/src/models"
)

// Parser defines the interface for turning one broker export file into the
// flat list of fills the classification engine consumes.
type Parser interface {
	Parse(file io.Reader) ([]models.Fill, error)
}
