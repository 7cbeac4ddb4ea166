package request

import "github.com/mcoot/nhlstats/internal/model"

// ImportPlayersRequest is the request body for importing raw player records
type ImportPlayersRequest struct {
	Players []model.PlayerFields `json:"players"`
}
