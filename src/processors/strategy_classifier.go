package processors

import (
	"fmt"
	"sort"

	"github.com/username/optionsjournal/backend/src/models"
)

// strategyClassifierImpl implements the StrategyClassifier interface as an
// ordered list of (predicate, result) rules. The first matching rule wins;
// order matters where a shape would otherwise be reachable by a weaker rule
// (covered call before the single-leg rules, for example).
type strategyClassifierImpl struct {
	rules []classificationRule
}

type classificationRule struct {
	name  string
	match func(s legShape) (models.ClassificationResult, bool)
}

// legShape is the precomputed view of the aggregated legs that the rules
// branch on. legs holds only option legs, sorted ascending by strike (ties
// broken by option type, then expiration).
type legShape struct {
	legs         []models.Leg
	hasLongStock bool
	calls        int
	puts         int
	sameExpiry   bool
	sameType     bool
	allLong      bool
}

// NewStrategyClassifier creates a new instance of StrategyClassifier.
func NewStrategyClassifier() StrategyClassifier {
	return &strategyClassifierImpl{
		rules: []classificationRule{
			{name: "no option legs", match: matchNoOptionLegs},
			{name: "covered call", match: matchCoveredCall},
			{name: "single leg", match: matchSingleLeg},
			{name: "two legs", match: matchTwoLegs},
			{name: "iron condor", match: matchIronCondor},
			{name: "butterfly", match: matchButterfly},
		},
	}
}

// Classify evaluates the rule cascade over the aggregated option legs.
// It never fails: any shape no rule recognizes falls back to Custom/LOW
// with the leg count in the reason, so the caller can always treat the
// result as advisory.
func (c *strategyClassifierImpl) Classify(optionLegs []models.Leg, hasLongStock bool) models.ClassificationResult {
	shape := buildLegShape(optionLegs, hasLongStock)
	for _, rule := range c.rules {
		if result, ok := rule.match(shape); ok {
			return result
		}
	}
	return models.ClassificationResult{
		Strategy:   models.StrategyCustom,
		Confidence: models.ConfidenceLow,
		Reason:     fmt.Sprintf("%d-leg position", len(shape.legs)),
	}
}

func buildLegShape(optionLegs []models.Leg, hasLongStock bool) legShape {
	legs := make([]models.Leg, len(optionLegs))
	copy(legs, optionLegs)
	sort.Slice(legs, func(i, j int) bool {
		a, b := legs[i], legs[j]
		if !a.SameStrike(b) {
			return a.Strike.LessThan(b.Strike)
		}
		if a.OptionType != b.OptionType {
			return a.OptionType < b.OptionType
		}
		return a.Expiration.Before(b.Expiration)
	})

	shape := legShape{
		legs:         legs,
		hasLongStock: hasLongStock,
		sameExpiry:   true,
		sameType:     true,
		allLong:      true,
	}
	for i, leg := range legs {
		if leg.IsCall() {
			shape.calls++
		}
		if leg.IsPut() {
			shape.puts++
		}
		if !leg.IsLong() {
			shape.allLong = false
		}
		if i > 0 {
			if !leg.SameExpiration(legs[0]) {
				shape.sameExpiry = false
			}
			if leg.OptionType != legs[0].OptionType {
				shape.sameType = false
			}
		}
	}
	return shape
}

func matchNoOptionLegs(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 0 {
		return models.ClassificationResult{}, false
	}
	if s.hasLongStock {
		return models.ClassificationResult{
			Strategy:   models.StrategyCustom,
			Confidence: models.ConfidenceLow,
			Reason:     "stock position only",
		}, true
	}
	return models.ClassificationResult{
		Strategy:   models.StrategyCustom,
		Confidence: models.ConfidenceLow,
		Reason:     "no options detected",
	}, true
}

func matchCoveredCall(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 1 || !s.hasLongStock {
		return models.ClassificationResult{}, false
	}
	leg := s.legs[0]
	if leg.IsCall() && leg.IsShort() {
		return models.ClassificationResult{
			Strategy:   models.StrategyCoveredCall,
			Confidence: models.ConfidenceHigh,
			Reason:     "short call against a long stock position",
		}, true
	}
	return models.ClassificationResult{}, false
}

func matchSingleLeg(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 1 {
		return models.ClassificationResult{}, false
	}
	leg := s.legs[0]
	switch {
	case leg.IsCall() && leg.IsLong():
		return models.ClassificationResult{
			Strategy:   models.StrategyLongCall,
			Confidence: models.ConfidenceHigh,
			Reason:     "single long call",
		}, true
	case leg.IsCall() && leg.IsShort():
		return models.ClassificationResult{
			Strategy:   models.StrategyShortCall,
			Confidence: models.ConfidenceHigh,
			Reason:     "single short call",
		}, true
	case leg.IsPut() && leg.IsLong():
		return models.ClassificationResult{
			Strategy:   models.StrategyLongPut,
			Confidence: models.ConfidenceHigh,
			Reason:     "single long put",
		}, true
	case leg.IsPut() && leg.IsShort() && !s.hasLongStock:
		// Collateral is not observable here, so cash-secured status is an
		// assumption rather than a verified fact.
		return models.ClassificationResult{
			Strategy:   models.StrategyCashSecuredPut,
			Confidence: models.ConfidenceMedium,
			Reason:     "short put with no stock leg; assumed cash secured (collateral not verified)",
		}, true
	case leg.IsPut() && leg.IsShort():
		return models.ClassificationResult{
			Strategy:   models.StrategyShortPut,
			Confidence: models.ConfidenceHigh,
			Reason:     "single short put held alongside stock",
		}, true
	}
	return models.ClassificationResult{}, false
}

func matchTwoLegs(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 2 {
		return models.ClassificationResult{}, false
	}
	lower, upper := s.legs[0], s.legs[1]

	if s.sameType && !s.sameExpiry {
		return models.ClassificationResult{
			Strategy:   models.StrategyCalendarSpread,
			Confidence: models.ConfidenceMedium,
			Reason:     fmt.Sprintf("two %s legs across different expirations (direction not verified)", legTypeWord(lower)),
		}, true
	}

	if s.sameType && s.sameExpiry {
		switch {
		case lower.IsCall() && lower.IsLong() && upper.IsShort():
			return models.ClassificationResult{
				Strategy:   models.StrategyBullCallSpread,
				Confidence: models.ConfidenceHigh,
				Reason:     fmt.Sprintf("long %s call, short %s call, same expiration", lower.Strike, upper.Strike),
			}, true
		case lower.IsCall() && lower.IsShort() && upper.IsLong():
			return models.ClassificationResult{
				Strategy:   models.StrategyBearCallSpread,
				Confidence: models.ConfidenceHigh,
				Reason:     fmt.Sprintf("short %s call, long %s call, same expiration", lower.Strike, upper.Strike),
			}, true
		case lower.IsPut() && lower.IsLong() && upper.IsShort():
			return models.ClassificationResult{
				Strategy:   models.StrategyBullPutSpread,
				Confidence: models.ConfidenceHigh,
				Reason:     fmt.Sprintf("long %s put, short %s put, same expiration (credit spread)", lower.Strike, upper.Strike),
			}, true
		case lower.IsPut() && lower.IsShort() && upper.IsLong():
			return models.ClassificationResult{
				Strategy:   models.StrategyBearPutSpread,
				Confidence: models.ConfidenceHigh,
				Reason:     fmt.Sprintf("short %s put, long %s put, same expiration (debit spread)", lower.Strike, upper.Strike),
			}, true
		}
		// Same-direction verticals (both long or both short) are not part of
		// the recognized taxonomy and fall through to the default.
		return models.ClassificationResult{}, false
	}

	if !s.sameType && s.sameExpiry && s.allLong {
		if lower.SameStrike(upper) {
			return models.ClassificationResult{
				Strategy:   models.StrategyStraddle,
				Confidence: models.ConfidenceHigh,
				Reason:     fmt.Sprintf("long call and long put at strike %s, same expiration", lower.Strike),
			}, true
		}
		return models.ClassificationResult{
			Strategy:   models.StrategyStrangle,
			Confidence: models.ConfidenceHigh,
			Reason:     fmt.Sprintf("long call and long put at strikes %s/%s, same expiration", lower.Strike, upper.Strike),
		}, true
	}

	// Short straddles/strangles, diagonals and other mixed two-leg shapes
	// are intentionally left to the default fallback.
	return models.ClassificationResult{}, false
}

func matchIronCondor(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 4 || s.calls != 2 || s.puts != 2 || !s.sameExpiry {
		return models.ClassificationResult{}, false
	}
	return models.ClassificationResult{
		Strategy:   models.StrategyIronCondor,
		Confidence: models.ConfidenceHigh,
		Reason:     "two call legs and two put legs sharing one expiration",
	}, true
}

func matchButterfly(s legShape) (models.ClassificationResult, bool) {
	if len(s.legs) != 3 || !s.sameType || !s.sameExpiry {
		return models.ClassificationResult{}, false
	}
	return models.ClassificationResult{
		Strategy:   models.StrategyButterfly,
		Confidence: models.ConfidenceHigh,
		Reason:     fmt.Sprintf("three %s legs, same expiration (wing direction not verified)", legTypeWord(s.legs[0])),
	}, true
}

func legTypeWord(l models.Leg) string {
	if l.IsPut() {
		return "put"
	}
	return "call"
}
