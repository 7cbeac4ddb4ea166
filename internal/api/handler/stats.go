package handler

import (
	"net/http"

	"github.com/mcoot/nhlstats/internal/api/response"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/services/roster"
)

// StatsHandler reports registry and storage sizes
type StatsHandler struct {
	rosterService *roster.Service
	gametimes     *model.Gametimes
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(rosterService *roster.Service, gametimes *model.Gametimes) *StatsHandler {
	return &StatsHandler{
		rosterService: rosterService,
		gametimes:     gametimes,
	}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rosterService.Stats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Stats{
		CachedPlayers:   stats.CachedPlayers,
		StoredRecords:   stats.StoredRecords,
		CachedGametimes: h.gametimes.Len(),
	})
}
