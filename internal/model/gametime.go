package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PeriodLength is the length of every period in seconds, overtime included
const PeriodLength = 20 * 60

// MaxPeriod is the highest period a Gametime accepts. The longest NHL game
// went to a sixth overtime (period 9); anything far past that is bad input.
const MaxPeriod = 99

// GametimeKey identifies a Gametime by period and seconds elapsed in that period
type GametimeKey struct {
	Period  int
	Seconds int
}

// Gametime is a point on the game clock. Like Player, at most one Gametime
// exists per key in a Gametimes registry and it never changes.
type Gametime struct {
	period  int
	seconds int
}

func buildGametime(key GametimeKey) (*Gametime, error) {
	if key.Period < 1 || key.Period > MaxPeriod {
		return nil, fmt.Errorf("%w: period must be in [1, %d], got %d", ErrInvalidGametime, MaxPeriod, key.Period)
	}
	if key.Seconds < 0 || key.Seconds > PeriodLength {
		return nil, fmt.Errorf("%w: period seconds must be in [0, %d], got %d", ErrInvalidGametime, PeriodLength, key.Seconds)
	}
	return &Gametime{period: key.Period, seconds: key.Seconds}, nil
}

// ParseClock converts a "MM:SS" period clock into seconds.
// Both parts must be unsigned decimal digits.
func ParseClock(clock string) (int, error) {
	mm, ss, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: clock %q is not MM:SS", ErrInvalidGametime, clock)
	}
	m, ok := parseDigits(mm)
	if !ok {
		return 0, fmt.Errorf("%w: clock %q: bad minutes", ErrInvalidGametime, clock)
	}
	s, ok := parseDigits(ss)
	if !ok {
		return 0, fmt.Errorf("%w: clock %q: bad seconds", ErrInvalidGametime, clock)
	}
	if s >= 60 {
		return 0, fmt.Errorf("%w: clock %q out of range", ErrInvalidGametime, clock)
	}
	return m*60 + s, nil
}

// parseDigits accepts one to three ASCII digits, no sign or spaces
func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 3 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Key returns the natural key of the gametime
func (g *Gametime) Key() GametimeKey {
	return GametimeKey{Period: g.period, Seconds: g.seconds}
}

// Period returns the period number, starting at 1
func (g *Gametime) Period() int { return g.period }

// PeriodSeconds returns the seconds elapsed in the period
func (g *Gametime) PeriodSeconds() int { return g.seconds }

// PeriodMS splits PeriodSeconds into minutes and seconds
func (g *Gametime) PeriodMS() (minutes, seconds int) {
	return g.seconds / 60, g.seconds % 60
}

// PeriodLabel returns "1st", "2nd", "3rd", then "OT", "2OT", ...
func (g *Gametime) PeriodLabel() string {
	switch g.period {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "OT"
	default:
		return fmt.Sprintf("%dOT", g.period-3)
	}
}

// Elapsed returns the seconds since the start of the game
func (g *Gametime) Elapsed() int {
	return (g.period-1)*PeriodLength + g.seconds
}

// MS splits Elapsed into minutes and seconds
func (g *Gametime) MS() (minutes, seconds int) {
	e := g.Elapsed()
	return e / 60, e % 60
}

func (g *Gametime) String() string {
	m, s := g.PeriodMS()
	return fmt.Sprintf("%02d:%02d %s", m, s, g.PeriodLabel())
}
