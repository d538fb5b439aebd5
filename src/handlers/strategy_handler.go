// backend/src/handlers/strategy_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/models"
)

// StrategyInfo describes one entry of the recognized strategy taxonomy so
// the UI can render pickers and explain confidence tiers.
type StrategyInfo struct {
	Strategy    models.Strategy `json:"strategy"`
	Description string          `json:"description"`
}

var strategyCatalog = []StrategyInfo{
	{models.StrategyLongCall, "Single long call"},
	{models.StrategyShortCall, "Single short call"},
	{models.StrategyLongPut, "Single long put"},
	{models.StrategyShortPut, "Single short put held alongside stock"},
	{models.StrategyCashSecuredPut, "Short put with no stock leg; collateral assumed"},
	{models.StrategyCoveredCall, "Short call against a long stock position"},
	{models.StrategyBullCallSpread, "Long lower-strike call, short higher-strike call, same expiration"},
	{models.StrategyBearCallSpread, "Short lower-strike call, long higher-strike call, same expiration"},
	{models.StrategyBullPutSpread, "Long lower-strike put, short higher-strike put, same expiration"},
	{models.StrategyBearPutSpread, "Short lower-strike put, long higher-strike put, same expiration"},
	{models.StrategyCalendarSpread, "Two same-type legs across different expirations"},
	{models.StrategyStraddle, "Long call and long put at the same strike and expiration"},
	{models.StrategyStrangle, "Long call and long put at different strikes, same expiration"},
	{models.StrategyIronCondor, "Two call legs and two put legs, one expiration"},
	{models.StrategyButterfly, "Three same-type legs, one expiration"},
	{models.StrategyCustom, "Unrecognized shape; needs human confirmation"},
}

// HandleGetStrategies serves the fixed strategy taxonomy.
func HandleGetStrategies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(strategyCatalog); err != nil {
		logger.L.Error("Error encoding JSON response for strategy catalog", "error", err)
	}
}
