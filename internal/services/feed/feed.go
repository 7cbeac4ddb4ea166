// Package feed decodes the upstream statistics feed into raw model records.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mcoot/nhlstats/internal/model"
)

// ErrMalformedFeed is returned when a feed document cannot be understood
var ErrMalformedFeed = errors.New("malformed feed")

// peopleDocument is the body of the statsapi /people endpoint
type peopleDocument struct {
	People []person `json:"people"`
}

type person struct {
	ID              int      `json:"id"`
	FullName        string   `json:"fullName"`
	PrimaryNumber   string   `json:"primaryNumber"`
	BirthDate       string   `json:"birthDate"`
	BirthCity       string   `json:"birthCity"`
	BirthCountry    string   `json:"birthCountry"`
	Height          string   `json:"height"`
	Weight          int      `json:"weight"`
	ShootsCatches   string   `json:"shootsCatches"`
	PrimaryPosition position `json:"primaryPosition"`
}

type position struct {
	Abbreviation string `json:"abbreviation"`
}

// Decode reads a people document and returns one record per person
func Decode(r io.Reader) ([]model.PlayerFields, error) {
	var doc peopleDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}

	records := make([]model.PlayerFields, 0, len(doc.People))
	for _, p := range doc.People {
		record, err := p.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeFile decodes the people document stored at path
func DecodeFile(path string) ([]model.PlayerFields, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func (p person) toRecord() (model.PlayerFields, error) {
	number, err := parseNumber(p.PrimaryNumber)
	if err != nil {
		return model.PlayerFields{}, fmt.Errorf("%w: player %d: number %q", ErrMalformedFeed, p.ID, p.PrimaryNumber)
	}
	height, err := ParseHeight(p.Height)
	if err != nil {
		return model.PlayerFields{}, fmt.Errorf("player %d: %w", p.ID, err)
	}

	return model.PlayerFields{
		ID:            model.PlayerID(p.ID),
		Name:          p.FullName,
		Number:        number,
		Position:      p.PrimaryPosition.Abbreviation,
		Height:        height,
		Weight:        p.Weight,
		ShootsCatches: p.ShootsCatches,
		BirthDate:     p.BirthDate,
		BirthCity:     p.BirthCity,
		BirthCountry:  p.BirthCountry,
	}, nil
}

func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// ParseHeight converts a feed height such as `6' 1"` into total inches.
// A blank height is unknown and returns 0.
func ParseHeight(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	ftStr, inStr, ok := strings.Cut(s, "'")
	if !ok {
		return 0, fmt.Errorf("%w: height %q", ErrMalformedFeed, s)
	}
	ft, err := strconv.Atoi(strings.TrimSpace(ftStr))
	if err != nil {
		return 0, fmt.Errorf("%w: height %q", ErrMalformedFeed, s)
	}

	inStr = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(inStr), `"`))
	in := 0
	if inStr != "" {
		in, err = strconv.Atoi(inStr)
		if err != nil || in < 0 || in >= 12 {
			return 0, fmt.Errorf("%w: height %q", ErrMalformedFeed, s)
		}
	}
	if ft < 0 {
		return 0, fmt.Errorf("%w: height %q", ErrMalformedFeed, s)
	}
	return ft*12 + in, nil
}
