package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
	players *Players
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) SetupTest() {
	s.players = NewPlayers()
}

func mcDavidFields() PlayerFields {
	return PlayerFields{
		ID:            8478402,
		Name:          "Connor McDavid",
		Number:        97,
		Position:      "C",
		Height:        73,
		Weight:        193,
		ShootsCatches: "L",
		BirthDate:     "1997-01-13",
		BirthCity:     "Richmond Hill",
		BirthCountry:  "CAN",
	}
}

func (s *PlayerSuite) TestStoredFields() {
	p, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)

	s.Equal(PlayerID(8478402), p.ID())
	s.Equal("Connor McDavid", p.Name())
	s.Equal(97, p.Number())
	s.Equal("C", p.Position())
	s.Equal(73, p.Height())
	s.Equal(193, p.Weight())
	s.Equal("L", p.ShootsCatches())
	s.Equal("Richmond Hill", p.BirthCity())
	s.Equal("CAN", p.BirthCountry())
	s.Equal(mcDavidFields(), p.Fields())
}

func (s *PlayerSuite) TestSameIDReturnsSameInstance() {
	first, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)

	changed := mcDavidFields()
	changed.Name = "Someone Else"
	changed.Number = 1
	second, err := s.players.Get(changed)
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal("Connor McDavid", second.Name())
	s.Equal(97, second.Number())
}

func (s *PlayerSuite) TestHitIgnoresInvalidFields() {
	first, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)

	second, err := s.players.Get(PlayerFields{ID: 8478402})
	s.Require().NoError(err)
	s.Same(first, second)
}

func (s *PlayerSuite) TestHasKeyAndFromKey() {
	s.False(s.players.HasKey(8478402))
	s.Nil(s.players.FromKey(8478402))

	p, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)

	s.True(s.players.HasKey(8478402))
	s.Same(p, s.players.FromKey(8478402))
	s.Equal(1, s.players.Len())
}

func (s *PlayerSuite) TestRegistriesAreIsolated() {
	other := NewPlayers()
	a, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)
	b, err := other.Get(mcDavidFields())
	s.Require().NoError(err)

	s.NotSame(a, b)
}

func (s *PlayerSuite) TestMissingKey() {
	p, err := s.players.Get(PlayerFields{})
	s.ErrorIs(err, ErrMissingKey)
	s.ErrorIs(err, ErrInvalidArgument)
	s.Nil(p)
	s.Equal(0, s.players.Len())
}

func (s *PlayerSuite) TestInvalidFieldsRegisterNothing() {
	tests := []struct {
		name   string
		mutate func(f *PlayerFields)
	}{
		{"no name", func(f *PlayerFields) { f.Name = "" }},
		{"no birth date", func(f *PlayerFields) { f.BirthDate = "" }},
		{"bad birth date", func(f *PlayerFields) { f.BirthDate = "1997/01/13" }},
		{"impossible birth date", func(f *PlayerFields) { f.BirthDate = "1997-02-30" }},
		{"negative height", func(f *PlayerFields) { f.Height = -1 }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			f := mcDavidFields()
			tt.mutate(&f)

			p, err := s.players.Get(f)
			s.ErrorIs(err, ErrInvalidArgument)
			s.Nil(p)
			s.False(s.players.HasKey(f.ID))
		})
	}
}

func (s *PlayerSuite) TestValidateRegistersNothing() {
	s.ErrorIs(s.players.Validate(PlayerFields{}), ErrMissingKey)

	bad := mcDavidFields()
	bad.BirthDate = "soon"
	s.ErrorIs(s.players.Validate(bad), ErrInvalidArgument)

	s.NoError(s.players.Validate(mcDavidFields()))
	s.Equal(0, s.players.Len())

	// Once registered, later fields are not checked
	_, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)
	s.NoError(s.players.Validate(bad))
}

func (s *PlayerSuite) TestNameSplit() {
	p, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)
	s.Equal("Connor", p.FirstName())
	s.Equal("McDavid", p.LastName())

	f := mcDavidFields()
	f.ID = 1
	f.Name = "James van Riemsdyk"
	p, err = s.players.Get(f)
	s.Require().NoError(err)
	s.Equal("James", p.FirstName())
	s.Equal("van Riemsdyk", p.LastName())
}

func (s *PlayerSuite) TestSingleWordName() {
	f := mcDavidFields()
	f.Name = "Pelé"
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	s.Equal("Pelé", p.FirstName())
	s.Equal("", p.LastName())
}

func (s *PlayerSuite) TestHeightSplit() {
	p, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)

	ft, ok := p.HeightFt()
	s.True(ok)
	s.Equal(6, ft)
	in, ok := p.HeightIn()
	s.True(ok)
	s.Equal(1, in)
}

func (s *PlayerSuite) TestUnknownHeight() {
	f := mcDavidFields()
	f.Height = 0
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	_, ok := p.HeightFt()
	s.False(ok)
	_, ok = p.HeightIn()
	s.False(ok)
}

func (s *PlayerSuite) TestBirthDateParsed() {
	f := mcDavidFields()
	f.BirthDate = "1990-05-14"
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	y, m, d := p.BirthDate().Date()
	s.Equal(1990, y)
	s.Equal(time.May, m)
	s.Equal(14, d)
}

func (s *PlayerSuite) TestAgeAt() {
	f := mcDavidFields()
	f.BirthDate = "1990-05-14"
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	tests := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 34},
		{time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC), 34},
		// Flat 365-day years run ahead of the calendar
		{time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), 34},
		{time.Date(1990, 5, 13, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		s.Equal(tt.want, p.AgeAt(tt.now), tt.now.String())
	}
}

func (s *PlayerSuite) TestAgeAtCenturiesAgo() {
	f := mcDavidFields()
	f.BirthDate = "1600-01-01"
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	// 424*365 + 103 leap days
	s.Equal(424, p.AgeAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *PlayerSuite) TestAgeUsesToday() {
	f := mcDavidFields()
	f.BirthDate = "1990-05-14"
	p, err := s.players.Get(f)
	s.Require().NoError(err)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(p.BirthDate()).Hours() / 24)
	s.Equal(days/365, p.Age())
}

func (s *PlayerSuite) TestString() {
	p, err := s.players.Get(mcDavidFields())
	s.Require().NoError(err)
	s.Equal("Connor McDavid (#97, C)", p.String())
}
