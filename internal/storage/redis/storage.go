package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayerRecord(ctx context.Context, record *model.PlayerFields) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerRecordKey(record.ID), data, s.cfg.RecordTTL)
	pipe.SAdd(ctx, playerIndexKey(), int(record.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayerRecord(ctx context.Context, id model.PlayerID) (*model.PlayerFields, error) {
	data, err := s.client.Get(ctx, playerRecordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var record model.PlayerFields
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) ListPlayerRecords(ctx context.Context) ([]*model.PlayerFields, error) {
	members, err := s.client.SMembers(ctx, playerIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return []*model.PlayerFields{}, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("player index member %q: %w", m, err)
		}
		keys = append(keys, playerRecordKey(model.PlayerID(id)))
	}

	// Fetch all records in one round trip using MGET
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.PlayerFields, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record may have expired
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		var record model.PlayerFields
		if err := json.Unmarshal([]byte(str), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (s *Storage) DeletePlayerRecord(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerRecordKey(id))
	pipe.SRem(ctx, playerIndexKey(), int(id))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) PlayerRecordExists(ctx context.Context, id model.PlayerID) (bool, error) {
	exists, err := s.client.Exists(ctx, playerRecordKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
