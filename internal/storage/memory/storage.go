package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	records map[model.PlayerID]model.PlayerFields
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		records: make(map[model.PlayerID]model.PlayerFields),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayerRecord(ctx context.Context, record *model.PlayerFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = *record
	return nil
}

func (s *Storage) GetPlayerRecord(ctx context.Context, id model.PlayerID) (*model.PlayerFields, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &record, nil
}

func (s *Storage) ListPlayerRecords(ctx context.Context) ([]*model.PlayerFields, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.PlayerFields, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, &record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *Storage) DeletePlayerRecord(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *Storage) PlayerRecordExists(ctx context.Context, id model.PlayerID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}
