package storage

import (
	"context"

	"github.com/mcoot/nhlstats/internal/model"
)

// Storage persists raw player records as supplied by the stats feed.
// It holds data, not entities: players are always materialized through a
// model.Players registry.
type Storage interface {
	SavePlayerRecord(ctx context.Context, record *model.PlayerFields) error
	GetPlayerRecord(ctx context.Context, id model.PlayerID) (*model.PlayerFields, error)
	ListPlayerRecords(ctx context.Context) ([]*model.PlayerFields, error)
	DeletePlayerRecord(ctx context.Context, id model.PlayerID) error
	PlayerRecordExists(ctx context.Context, id model.PlayerID) (bool, error)
}
