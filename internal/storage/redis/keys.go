package redis

import (
	"fmt"

	"github.com/mcoot/nhlstats/internal/model"
)

// Key prefix for all stats data
const keyPrefix = "nhl"

// playerRecordKey returns the Redis key for a raw player record
func playerRecordKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the SET of stored player IDs
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
