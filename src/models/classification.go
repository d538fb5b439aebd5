package models

// Strategy is one label from the fixed taxonomy of recognized multi-leg
// structures. Shapes that match no rule are labelled StrategyCustom.
type Strategy string

const (
	StrategyLongCall       Strategy = "Long Call"
	StrategyShortCall      Strategy = "Short Call"
	StrategyLongPut        Strategy = "Long Put"
	StrategyShortPut       Strategy = "Short Put"
	StrategyCashSecuredPut Strategy = "Cash Secured Put"
	StrategyCoveredCall    Strategy = "Covered Call"
	StrategyBullCallSpread Strategy = "Bull Call Spread"
	StrategyBearCallSpread Strategy = "Bear Call Spread"
	StrategyBullPutSpread  Strategy = "Bull Put Spread"
	StrategyBearPutSpread  Strategy = "Bear Put Spread"
	StrategyCalendarSpread Strategy = "Calendar Spread"
	StrategyStraddle       Strategy = "Straddle"
	StrategyStrangle       Strategy = "Strangle"
	StrategyIronCondor     Strategy = "Iron Condor"
	StrategyButterfly      Strategy = "Butterfly"
	StrategyCustom         Strategy = "Custom"
)

// Confidence qualifies how much a classification should be trusted.
// HIGH is an unambiguous structural match, MEDIUM a structural match that
// rests on an unverifiable assumption, LOW the fallback that needs human
// confirmation before being committed to a trade record.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ClassificationResult is the advisory output of the strategy classifier.
// The calling layer lets the user override Strategy before committing.
type ClassificationResult struct {
	Strategy   Strategy   `json:"strategy"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
}
