package response

import (
	"fmt"

	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/services/roster"
)

// Player represents a player in API responses
type Player = roster.Profile

// PlayerList is the response for player listing endpoints
type PlayerList struct {
	Players []Player `json:"players"`
}

// Gametime represents a game clock point in API responses
type Gametime struct {
	Period        int    `json:"period"`
	PeriodLabel   string `json:"period_label"`
	PeriodSeconds int    `json:"period_seconds"`
	PeriodClock   string `json:"period_clock"`
	Elapsed       int    `json:"elapsed"`
	ElapsedClock  string `json:"elapsed_clock"`
}

// GametimeFromModel converts a model.Gametime to a response Gametime
func GametimeFromModel(g *model.Gametime) Gametime {
	pm, ps := g.PeriodMS()
	m, s := g.MS()
	return Gametime{
		Period:        g.Period(),
		PeriodLabel:   g.PeriodLabel(),
		PeriodSeconds: g.PeriodSeconds(),
		PeriodClock:   fmt.Sprintf("%02d:%02d", pm, ps),
		Elapsed:       g.Elapsed(),
		ElapsedClock:  fmt.Sprintf("%02d:%02d", m, s),
	}
}

// Stats is the response for the stats endpoint
type Stats struct {
	CachedPlayers   int `json:"cached_players"`
	StoredRecords   int `json:"stored_records"`
	CachedGametimes int `json:"cached_gametimes"`
}
