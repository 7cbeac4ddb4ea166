package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/nhlstats/internal/api/request"
	"github.com/mcoot/nhlstats/internal/api/response"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/services/roster"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	rosterService *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.Players(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.PlayerList{Players: make([]response.Player, 0, len(players))}
	for _, p := range players {
		resp.Players = append(resp.Players, h.rosterService.Profile(p))
	}
	response.JSON(w, http.StatusOK, resp)
}

// Import handles POST /api/v1/players
func (h *PlayerHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req request.ImportPlayersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.Players) == 0 {
		WriteError(w, NewInvalidRequestError("players is required"))
		return
	}

	players, err := h.rosterService.Import(r.Context(), req.Players)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.PlayerList{Players: make([]response.Player, 0, len(players))}
	for _, p := range players {
		resp.Players = append(resp.Players, h.rosterService.Profile(p))
	}
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.rosterService.Player(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.rosterService.Profile(p))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.rosterService.Forget(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func playerIDFromRequest(r *http.Request) (model.PlayerID, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, NewInvalidRequestError("player id must be a positive integer")
	}
	return model.PlayerID(id), nil
}
