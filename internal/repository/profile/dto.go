package profile

import (
	"fmt"

	"github.com/goccy/go-json"

	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
)

// profileRow is the stored JSON shape of a profile.
type profileRow struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Roles           []string `json:"roles,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	PortfolioLinks  []string `json:"portfolio_links,omitempty"`
	Location        string   `json:"location,omitempty"`
}

func profileToJSON(p *domprofile.Profile) ([]byte, error) {
	f := p.Fields()
	data, err := json.Marshal(profileRow{
		ID:              p.ID(),
		Name:            f.Name,
		Roles:           f.Roles,
		Genres:          f.Genres,
		Bio:             f.Bio,
		ProfileImageURL: f.ProfileImageURL,
		PortfolioLinks:  f.PortfolioLinks,
		Location:        f.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return data, nil
}

// profileFromJSON hydrates a profile. Missing fields become empty values.
func profileFromJSON(data []byte) (domprofile.Profile, error) {
	var row profileRow
	if err := json.Unmarshal(data, &row); err != nil {
		return domprofile.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return domprofile.Reconstruct(row.ID, domprofile.Fields{
		Name:            row.Name,
		Roles:           row.Roles,
		Genres:          row.Genres,
		Bio:             row.Bio,
		ProfileImageURL: row.ProfileImageURL,
		PortfolioLinks:  row.PortfolioLinks,
		Location:        row.Location,
	}), nil
}
