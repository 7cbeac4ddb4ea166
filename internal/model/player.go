package model

import (
	"fmt"
	"strings"
	"time"
)

// PlayerID is the NHL statsapi universal player ID
type PlayerID int

// BirthDateLayout is the layout of birth dates supplied by the stats feed
const BirthDateLayout = "2006-01-02"

const (
	daysPerYear   = 365
	secondsPerDay = 24 * 60 * 60
)

// PlayerFields holds the raw values a Player is constructed from,
// as supplied by the stats feed.
type PlayerFields struct {
	ID            PlayerID `json:"id"`
	Name          string   `json:"name"`
	Number        int      `json:"number"`
	Position      string   `json:"position"`       // "LW", "C", "RW", "D", "G"
	Height        int      `json:"height"`         // total inches, 0 if unknown
	Weight        int      `json:"weight"`         // lbs
	ShootsCatches string   `json:"shoots_catches"` // "L" or "R"
	BirthDate     string   `json:"birth_date"`     // YYYY-MM-DD
	BirthCity     string   `json:"birth_city"`
	BirthCountry  string   `json:"birth_country"`
}

// Player is an NHL player. Players are shared: at most one Player exists per
// PlayerID in a Players registry, so two *Player for the same ID are the same pointer.
// A Player has no setters and never changes after construction.
type Player struct {
	id            PlayerID
	name          string
	number        int
	position      string
	height        int
	weight        int
	shootsCatches string
	birthDate     time.Time
	birthCity     string
	birthCountry  string
}

func buildPlayer(f PlayerFields) (*Player, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("%w: player %d: name is required", ErrInvalidArgument, f.ID)
	}
	if f.Height < 0 || f.Weight < 0 {
		return nil, fmt.Errorf("%w: player %d: negative height or weight", ErrInvalidArgument, f.ID)
	}
	birthDate, err := time.Parse(BirthDateLayout, f.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: player %d: birth date %q: %w", ErrInvalidArgument, f.ID, f.BirthDate, err)
	}

	return &Player{
		id:            f.ID,
		name:          f.Name,
		number:        f.Number,
		position:      f.Position,
		height:        f.Height,
		weight:        f.Weight,
		shootsCatches: f.ShootsCatches,
		birthDate:     birthDate,
		birthCity:     f.BirthCity,
		birthCountry:  f.BirthCountry,
	}, nil
}

func (p *Player) ID() PlayerID          { return p.id }
func (p *Player) Name() string          { return p.name }
func (p *Player) Number() int           { return p.number }
func (p *Player) Position() string      { return p.position }
func (p *Player) Height() int           { return p.height }
func (p *Player) Weight() int           { return p.weight }
func (p *Player) ShootsCatches() string { return p.shootsCatches }
func (p *Player) BirthCity() string     { return p.birthCity }
func (p *Player) BirthCountry() string  { return p.birthCountry }

// BirthDate returns the birth date as midnight UTC
func (p *Player) BirthDate() time.Time { return p.birthDate }

// FirstName returns the name up to the first space.
// A single-word name is returned whole.
func (p *Player) FirstName() string {
	first, _, _ := strings.Cut(p.name, " ")
	return first
}

// LastName returns everything after the first space, or "" for a single-word name
func (p *Player) LastName() string {
	_, last, _ := strings.Cut(p.name, " ")
	return last
}

// HeightFt returns the whole feet of the player's height.
// ok is false when the height is unknown.
func (p *Player) HeightFt() (ft int, ok bool) {
	if p.height == 0 {
		return 0, false
	}
	return p.height / 12, true
}

// HeightIn returns the inches remaining after HeightFt.
// ok is false when the height is unknown.
func (p *Player) HeightIn() (in int, ok bool) {
	if p.height == 0 {
		return 0, false
	}
	return p.height % 12, true
}

// AgeAt returns the age in whole years on the calendar day of now.
// Years are a flat 365 days; leap days are not accounted for.
func (p *Player) AgeAt(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds, since a time.Duration saturates at about 292 years
	days := floorDiv(int(today.Unix()-p.birthDate.Unix()), secondsPerDay)
	return floorDiv(days, daysPerYear)
}

// Age returns the current age in whole years
func (p *Player) Age() int {
	return p.AgeAt(time.Now())
}

// Fields returns the raw values the player was constructed from
func (p *Player) Fields() PlayerFields {
	return PlayerFields{
		ID:            p.id,
		Name:          p.name,
		Number:        p.number,
		Position:      p.position,
		Height:        p.height,
		Weight:        p.weight,
		ShootsCatches: p.shootsCatches,
		BirthDate:     p.birthDate.Format(BirthDateLayout),
		BirthCity:     p.birthCity,
		BirthCountry:  p.birthCountry,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (#%d, %s)", p.name, p.number, p.position)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
