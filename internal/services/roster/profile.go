package roster

import "github.com/mcoot/nhlstats/internal/model"

// Profile is a display projection of a player with its computed fields
type Profile struct {
	ID            model.PlayerID `json:"id"`
	Name          string         `json:"name"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Number        int            `json:"number"`
	Position      string         `json:"position"`
	Height        int            `json:"height"`
	HeightFt      *int           `json:"height_ft"`
	HeightIn      *int           `json:"height_in"`
	Weight        int            `json:"weight"`
	ShootsCatches string         `json:"shoots_catches"`
	BirthDate     string         `json:"birth_date"`
	Age           int            `json:"age"`
	BirthCity     string         `json:"birth_city"`
	BirthCountry  string         `json:"birth_country"`
}

// Profile builds the display projection of p, with age taken from the service clock
func (s *Service) Profile(p *model.Player) Profile {
	profile := Profile{
		ID:            p.ID(),
		Name:          p.Name(),
		FirstName:     p.FirstName(),
		LastName:      p.LastName(),
		Number:        p.Number(),
		Position:      p.Position(),
		Height:        p.Height(),
		Weight:        p.Weight(),
		ShootsCatches: p.ShootsCatches(),
		BirthDate:     p.BirthDate().Format(model.BirthDateLayout),
		Age:           p.AgeAt(s.clock.Now()),
		BirthCity:     p.BirthCity(),
		BirthCountry:  p.BirthCountry(),
	}
	if ft, ok := p.HeightFt(); ok {
		profile.HeightFt = &ft
	}
	if in, ok := p.HeightIn(); ok {
		profile.HeightIn = &in
	}
	return profile
}
