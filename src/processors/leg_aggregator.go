package processors

import (
	"sort"

	"github.com/username/optionsjournal/backend/src/models"
)

// legAggregatorImpl implements the LegAggregator interface.
type legAggregatorImpl struct{}

// NewLegAggregator creates a new instance of LegAggregator.
func NewLegAggregator() LegAggregator {
	return &legAggregatorImpl{}
}

// Aggregate partitions fills into option and stock subsets, nets signed
// quantities per contract key (+quantity for BOUGHT, -quantity for SOLD)
// and drops any leg whose net quantity is zero. Option legs are sorted by
// expiration, option type and strike so the output is deterministic for a
// given input regardless of fill order; the stock leg, when present, is
// always last.
func (a *legAggregatorImpl) Aggregate(fills []models.Fill) []models.Leg {
	optionNet := make(map[models.ContractKey]models.Leg)
	stockNet := 0

	for _, f := range fills {
		if !f.IsOption() {
			stockNet += f.SignedQuantity()
			continue
		}
		key := models.ContractKeyOf(f)
		leg, ok := optionNet[key]
		if !ok {
			leg = models.Leg{
				SecurityType: models.SecurityOption,
				OptionType:   f.OptionType,
				Strike:       f.Strike,
				Expiration:   f.Expiration,
			}
		}
		leg.NetQuantity += f.SignedQuantity()
		optionNet[key] = leg
	}

	legs := make([]models.Leg, 0, len(optionNet)+1)
	for _, leg := range optionNet {
		// A zero net quantity means the contract was fully flattened by the
		// fills; it contributes no directional exposure.
		if leg.NetQuantity == 0 {
			continue
		}
		legs = append(legs, leg)
	}
	sortLegs(legs)

	if stockNet != 0 {
		legs = append(legs, models.Leg{
			SecurityType: models.SecurityStock,
			NetQuantity:  stockNet,
		})
	}
	return legs
}

// sortLegs orders option legs by expiration, then option type, then strike.
// Map iteration order must never leak into the output.
func sortLegs(legs []models.Leg) {
	sort.Slice(legs, func(i, j int) bool {
		a, b := legs[i], legs[j]
		if !a.Expiration.Equal(b.Expiration) {
			return a.Expiration.Before(b.Expiration)
		}
		if a.OptionType != b.OptionType {
			return a.OptionType < b.OptionType
		}
		return a.Strike.LessThan(b.Strike)
	})
}

// SplitLegs separates the option legs from the synthetic stock leg, if one
// is present. The relative order of the option legs is preserved.
func SplitLegs(legs []models.Leg) (optionLegs []models.Leg, stockLeg *models.Leg) {
	optionLegs = make([]models.Leg, 0, len(legs))
	for i := range legs {
		if legs[i].IsStock() {
			l := legs[i]
			stockLeg = &l
			continue
		}
		optionLegs = append(optionLegs, legs[i])
	}
	return optionLegs, stockLeg
}
