package services

import (
	"errors"
	"io"

	"github.com/username/optionsjournal/backend/src/models"
)

var (
	// ErrParsingFailed wraps any error from the source-specific fill parsers.
	ErrParsingFailed = errors.New("error parsing fill export")
	// ErrUploadNotFound is returned when an upload token is unknown or its
	// cached result has expired.
	ErrUploadNotFound = errors.New("upload result not found")
)

// ClassificationOutcome bundles everything the journal UI needs to prefill
// a trade record from one candidate fill set. The classification is
// advisory; the user can override the strategy before committing.
type ClassificationOutcome struct {
	Fills          []models.Fill               `json:"fills"`
	Legs           []models.Leg                `json:"legs"`
	HasLongStock   bool                        `json:"has_long_stock"`
	Classification models.ClassificationResult `json:"classification"`
}

// UploadResult is a ClassificationOutcome tagged with the token under which
// it is cached for re-reads.
type UploadResult struct {
	UploadID string `json:"upload_id"`
	Source   string `json:"source"`
	ClassificationOutcome
}

// ClassificationService defines the core orchestration: fills in,
// classification out, with optional short-lived caching of upload results.
type ClassificationService interface {
	ClassifyFills(fills []models.Fill) (*ClassificationOutcome, error)
	ProcessUpload(fileReader io.Reader, source string) (*UploadResult, error)
	GetUploadResult(uploadID string) (*UploadResult, error)
}
