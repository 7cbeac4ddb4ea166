package model

import "github.com/mcoot/nhlstats/internal/flyweight"

// Players is the construction path for Player values. It guarantees a
// single shared *Player per PlayerID.
type Players struct {
	cache *flyweight.Cache[PlayerID, *Player]
}

// NewPlayers creates an empty player registry
func NewPlayers() *Players {
	return &Players{cache: flyweight.New[PlayerID, *Player]()}
}

// Get returns the Player for f.ID, constructing it from f if the ID has not
// been seen. On a hit the rest of f is ignored.
func (r *Players) Get(f PlayerFields) (*Player, error) {
	if f.ID == 0 {
		return nil, ErrMissingKey
	}
	return r.cache.GetOrCreate(f.ID, func() (*Player, error) {
		return buildPlayer(f)
	})
}

// Validate reports whether Get(f) would succeed, without registering
// anything. Fields for an ID that is already registered are not checked,
// since Get ignores them.
func (r *Players) Validate(f PlayerFields) error {
	if f.ID == 0 {
		return ErrMissingKey
	}
	if r.cache.HasKey(f.ID) {
		return nil
	}
	_, err := buildPlayer(f)
	return err
}

// HasKey reports whether a Player was constructed for id
func (r *Players) HasKey(id PlayerID) bool {
	return r.cache.HasKey(id)
}

// FromKey returns the Player constructed for id, or nil if there is none
func (r *Players) FromKey(id PlayerID) *Player {
	p, _ := r.cache.FromKey(id)
	return p
}

// Len returns the number of players constructed
func (r *Players) Len() int {
	return r.cache.Len()
}

// Gametimes is the construction path for Gametime values
type Gametimes struct {
	cache *flyweight.Cache[GametimeKey, *Gametime]
}

// NewGametimes creates an empty gametime registry
func NewGametimes() *Gametimes {
	return &Gametimes{cache: flyweight.New[GametimeKey, *Gametime]()}
}

// Get returns the Gametime for (period, seconds), constructing it if needed
func (r *Gametimes) Get(period, seconds int) (*Gametime, error) {
	key := GametimeKey{Period: period, Seconds: seconds}
	return r.cache.GetOrCreate(key, func() (*Gametime, error) {
		return buildGametime(key)
	})
}

// Parse returns the Gametime for a period and a "MM:SS" clock
func (r *Gametimes) Parse(period int, clock string) (*Gametime, error) {
	seconds, err := ParseClock(clock)
	if err != nil {
		return nil, err
	}
	return r.Get(period, seconds)
}

// HasKey reports whether a Gametime was constructed for key
func (r *Gametimes) HasKey(key GametimeKey) bool {
	return r.cache.HasKey(key)
}

// FromKey returns the Gametime constructed for key, or nil if there is none
func (r *Gametimes) FromKey(key GametimeKey) *Gametime {
	g, _ := r.cache.FromKey(key)
	return g
}

// Len returns the number of gametimes constructed
func (r *Gametimes) Len() int {
	return r.cache.Len()
}

// Process-wide registries. They live as long as the process.
var (
	defaultPlayers   = NewPlayers()
	defaultGametimes = NewGametimes()
)

// DefaultPlayers returns the process-wide player registry
func DefaultPlayers() *Players { return defaultPlayers }

// DefaultGametimes returns the process-wide gametime registry
func DefaultGametimes() *Gametimes { return defaultGametimes }

// NewPlayer returns the shared Player for f.ID from the process-wide registry
func NewPlayer(f PlayerFields) (*Player, error) { return defaultPlayers.Get(f) }

// HasPlayer reports whether the process-wide registry holds id
func HasPlayer(id PlayerID) bool { return defaultPlayers.HasKey(id) }

// PlayerFromKey returns the Player for id from the process-wide registry, or nil
func PlayerFromKey(id PlayerID) *Player { return defaultPlayers.FromKey(id) }

// NewGametime returns the shared Gametime from the process-wide registry
func NewGametime(period, seconds int) (*Gametime, error) {
	return defaultGametimes.Get(period, seconds)
}

// ParseGametime returns the shared Gametime for a period and "MM:SS" clock
func ParseGametime(period int, clock string) (*Gametime, error) {
	return defaultGametimes.Parse(period, clock)
}

// HasGametime reports whether the process-wide registry holds key
func HasGametime(key GametimeKey) bool { return defaultGametimes.HasKey(key) }

// GametimeFromKey returns the Gametime for key from the process-wide registry, or nil
func GametimeFromKey(key GametimeKey) *Gametime { return defaultGametimes.FromKey(key) }
