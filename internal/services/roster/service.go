package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/nhlstats/internal/dependencies/clock"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/services/feed"
	"github.com/mcoot/nhlstats/internal/storage"
)

// maxConcurrentFiles bounds ImportFiles
const maxConcurrentFiles = 4

// Service keeps stored player records and the player registry in step
type Service struct {
	storage storage.Storage
	players *model.Players
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster Service
func New(
	storage storage.Storage,
	players *model.Players,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		players: players,
		clock:   clock,
		logger:  logger,
	}
}

// Import constructs a player for every record and stores its canonical
// fields. A record whose ID already has a player does not change that player;
// the stored record is rewritten from the existing player.
//
// The whole batch is validated first: if any record is invalid nothing is
// registered or stored.
func (s *Service) Import(ctx context.Context, records []model.PlayerFields) ([]*model.Player, error) {
	for i, record := range records {
		if err := s.players.Validate(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	players := make([]*model.Player, 0, len(records))
	for i, record := range records {
		known := s.players.HasKey(record.ID)

		p, err := s.players.Get(record)
		if err != nil {
			return players, fmt.Errorf("record %d: %w", i, err)
		}

		if known && p.Fields() != record {
			s.logger.Debug("ignoring fields for known player",
				slog.Int("player_id", int(record.ID)),
			)
		}

		fields := p.Fields()
		if err := s.storage.SavePlayerRecord(ctx, &fields); err != nil {
			s.logger.Error("failed to save player record",
				slog.Int("player_id", int(p.ID())),
				slog.String("error", err.Error()),
			)
			return players, err
		}
		players = append(players, p)
	}

	s.logger.Info("players imported",
		slog.Int("count", len(players)),
	)

	return players, nil
}

// ImportFiles decodes and imports several feed files concurrently.
// It returns the number of records imported.
func (s *Service) ImportFiles(ctx context.Context, paths ...string) (int, error) {
	var imported atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)

	for _, path := range paths {
		g.Go(func() error {
			records, err := feed.DecodeFile(path)
			if err != nil {
				return err
			}
			players, err := s.Import(ctx, records)
			imported.Add(int64(len(players)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	err := g.Wait()
	return int(imported.Load()), err
}

// Player returns the player for id, constructing it from its stored record
// if it has not been seen yet
func (s *Service) Player(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if p := s.players.FromKey(id); p != nil {
		return p, nil
	}

	record, err := s.storage.GetPlayerRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.players.Get(*record)
}

// Players returns every stored player ordered by ID
func (s *Service) Players(ctx context.Context) ([]*model.Player, error) {
	records, err := s.storage.ListPlayerRecords(ctx)
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(records))
	for _, record := range records {
		p, err := s.players.Get(*record)
		if err != nil {
			return nil, fmt.Errorf("stored player %d: %w", record.ID, err)
		}
		players = append(players, p)
	}
	return players, nil
}

// Forget removes the stored record for id. The registry keeps the player:
// constructed players are never discarded.
func (s *Service) Forget(ctx context.Context, id model.PlayerID) error {
	exists, err := s.storage.PlayerRecordExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrPlayerNotFound
	}
	return s.storage.DeletePlayerRecord(ctx, id)
}

// Stats reports registry and storage sizes
type Stats struct {
	CachedPlayers int `json:"cached_players"`
	StoredRecords int `json:"stored_records"`
}

// Stats returns the current registry and storage sizes
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	records, err := s.storage.ListPlayerRecords(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		CachedPlayers: s.players.Len(),
		StoredRecords: len(records),
	}, nil
}
