// backend/src/services/classification_service.go
package services

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/models"
	"github.com/username/optionsjournal/backend/src/parsers"
	"github.com/username/optionsjournal/backend/src/processors"
	"github.com/username/optionsjournal/backend/src/security/validation"
)

const ckUploadResult = "upload_result_%s"

type classificationServiceImpl struct {
	legAggregator      processors.LegAggregator
	strategyClassifier processors.StrategyClassifier
	resultCache        *cache.Cache
}

// NewClassificationService wires the aggregation and classification engine
// behind the service interface. resultCache holds upload results so the UI
// can re-read them without re-uploading; nothing is persisted.
func NewClassificationService(
	legAggregator processors.LegAggregator,
	strategyClassifier processors.StrategyClassifier,
	resultCache *cache.Cache,
) ClassificationService {
	return &classificationServiceImpl{
		legAggregator:      legAggregator,
		strategyClassifier: strategyClassifier,
		resultCache:        resultCache,
	}
}

// ClassifyFills runs the candidate fill set through validation, leg
// aggregation and strategy classification. The only error source is
// validation; the engine itself is total.
func (s *classificationServiceImpl) ClassifyFills(fills []models.Fill) (*ClassificationOutcome, error) {
	if err := validation.ValidateFills(fills); err != nil {
		return nil, err
	}

	legs := s.legAggregator.Aggregate(fills)
	optionLegs, stockLeg := processors.SplitLegs(legs)
	hasLongStock := stockLeg != nil && stockLeg.IsLong()

	result := s.strategyClassifier.Classify(optionLegs, hasLongStock)
	logger.L.Info("Classified fill set",
		"fills", len(fills),
		"optionLegs", len(optionLegs),
		"hasLongStock", hasLongStock,
		"strategy", result.Strategy,
		"confidence", result.Confidence)

	if fills == nil {
		fills = []models.Fill{}
	}
	return &ClassificationOutcome{
		Fills:          fills,
		Legs:           legs,
		HasLongStock:   hasLongStock,
		Classification: result,
	}, nil
}

// ProcessUpload parses a broker export, classifies the resulting fills and
// caches the outcome under a fresh upload token.
func (s *classificationServiceImpl) ProcessUpload(fileReader io.Reader, source string) (*UploadResult, error) {
	startTime := time.Now()
	logger.L.Info("ProcessUpload START", "source", source)

	parser, err := parsers.GetParser(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	fills, err := parser.Parse(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	outcome, err := s.ClassifyFills(fills)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		UploadID:              uuid.NewString(),
		Source:                source,
		ClassificationOutcome: *outcome,
	}
	s.resultCache.Set(fmt.Sprintf(ckUploadResult, result.UploadID), result, cache.DefaultExpiration)

	logger.L.Info("ProcessUpload END",
		"source", source,
		"uploadID", result.UploadID,
		"fills", len(result.Fills),
		"strategy", result.Classification.Strategy,
		"duration", time.Since(startTime))
	return result, nil
}

// GetUploadResult re-reads a cached upload result by its token.
func (s *classificationServiceImpl) GetUploadResult(uploadID string) (*UploadResult, error) {
	if cached, found := s.resultCache.Get(fmt.Sprintf(ckUploadResult, uploadID)); found {
		logger.L.Debug("Cache hit for upload result", "uploadID", uploadID)
		return cached.(*UploadResult), nil
	}
	logger.L.Debug("Cache miss for upload result", "uploadID", uploadID)
	return nil, fmt.Errorf("%w: %s", ErrUploadNotFound, uploadID)
}
