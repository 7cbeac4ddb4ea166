package factory

import (
	"time"

	"github.com/mcoot/nhlstats/internal/dependencies/mocks"
	"github.com/mcoot/nhlstats/internal/model"
	"github.com/mcoot/nhlstats/internal/storage/memory"
	"github.com/mcoot/nhlstats/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock and
// its own registries, isolated from the process-wide ones
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, model.NewPlayers(), model.NewGametimes(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// TestRoster returns a small roster of raw player records
func TestRoster() []model.PlayerFields {
	return []model.PlayerFields{
		{
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
		},
		{
			ID:            8477934,
			Name:          "Leon Draisaitl",
			Number:        29,
			Position:      "C",
			Height:        74,
			Weight:        208,
			ShootsCatches: "L",
			BirthDate:     "1995-10-27",
			BirthCity:     "Cologne",
			BirthCountry:  "DEU",
		},
		{
			ID:            8479973,
			Name:          "Stuart Skinner",
			Number:        74,
			Position:      "G",
			Height:        76,
			Weight:        206,
			ShootsCatches: "L",
			BirthDate:     "1998-11-01",
			BirthCity:     "Edmonton",
			BirthCountry:  "CAN",
		},
	}
}
