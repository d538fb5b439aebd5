package processors

import (
	"github.com/username/optionsjournal/backend/src/models"
)

// LegAggregator collapses a candidate set of fills into net leg positions,
// one per distinct option contract plus at most one synthetic stock leg.
type LegAggregator interface {
	Aggregate(fills []models.Fill) []models.Leg
}

// StrategyClassifier matches aggregated option legs against the fixed
// taxonomy of recognized multi-leg structures. It is total: every input
// maps to a result, with the Custom/LOW fallback for unmatched shapes.
type StrategyClassifier interface {
	Classify(optionLegs []models.Leg, hasLongStock bool) models.ClassificationResult
}
