package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/nhlstats/internal/api/response"
	"github.com/mcoot/nhlstats/internal/model"
)

const gametimeMaxAge = 24 * time.Hour

// GametimeHandler handles game clock endpoints
type GametimeHandler struct {
	gametimes *model.Gametimes
}

// NewGametimeHandler creates a new gametime handler
func NewGametimeHandler(gametimes *model.Gametimes) *GametimeHandler {
	return &GametimeHandler{
		gametimes: gametimes,
	}
}

// Get handles GET /api/v1/gametimes/{period}/{clock}
// clock is either "MM:SS" or whole seconds into the period.
func (h *GametimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	period, err := strconv.Atoi(vars["period"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("period must be an integer"))
		return
	}

	clock := vars["clock"]
	var g *model.Gametime
	if strings.Contains(clock, ":") {
		g, err = h.gametimes.Parse(period, clock)
	} else {
		seconds, convErr := strconv.Atoi(clock)
		if convErr != nil {
			WriteError(w, NewInvalidRequestError("clock must be MM:SS or seconds"))
			return
		}
		g, err = h.gametimes.Get(period, seconds)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.CacheableJSON(w, http.StatusOK, response.GametimeFromModel(g), gametimeMaxAge)
}
