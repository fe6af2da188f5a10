package profile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	// MaxBioLength is the maximum bio length in characters.
	MaxBioLength = 2000
	// MaxGenres caps the number of declared favorite genres.
	MaxGenres = 20
)

// Fields carries the mutable attributes of a profile.
type Fields struct {
	Name            string
	Roles           []string
	Genres          []string
	Bio             string
	ProfileImageURL string
	PortfolioLinks  []string
	Location        string
}

// Profile is a user profile snapshot (immutable value object).
// Roles and genres are ordered sets: empty entries and duplicates are dropped,
// first occurrence wins.
type Profile struct {
	id              string
	name            string
	roles           []string
	genres          []string
	bio             string
	profileImageURL string
	portfolioLinks  []string
	location        string
}

// New validates and creates a Profile.
func New(id string, f Fields) (Profile, error) {
	if id == "" {
		return Profile{}, fmt.Errorf("profile ID is required")
	}
	if len(id) > 128 {
		return Profile{}, fmt.Errorf("profile ID too long (max 128)")
	}
	if !idRegex.MatchString(id) {
		return Profile{}, fmt.Errorf("profile ID must be alphanumeric with underscores and hyphens")
	}
	if strings.TrimSpace(f.Name) == "" {
		return Profile{}, fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(f.Bio) > MaxBioLength {
		return Profile{}, fmt.Errorf("bio too long (max %d characters)", MaxBioLength)
	}
	if len(f.Genres) > MaxGenres {
		return Profile{}, fmt.Errorf("too many genres (max %d)", MaxGenres)
	}
	return Reconstruct(id, f), nil
}

// Reconstruct creates a Profile without validation (storage hydration).
// Missing fields become empty defaults.
func Reconstruct(id string, f Fields) Profile {
	return Profile{
		id:              id,
		name:            f.Name,
		roles:           orderedSet(f.Roles),
		genres:          orderedSet(f.Genres),
		bio:             f.Bio,
		profileImageURL: f.ProfileImageURL,
		portfolioLinks:  nonEmpty(f.PortfolioLinks),
		location:        f.Location,
	}
}

// ID returns the profile identifier (the auth user id).
func (p *Profile) ID() string { return p.id }

// Name returns the display name.
func (p *Profile) Name() string { return p.name }

// Roles returns the declared roles in declaration order.
func (p *Profile) Roles() []string { return p.roles }

// PrimaryRole returns the first declared role, or "" when none is set.
func (p *Profile) PrimaryRole() string {
	if len(p.roles) == 0 {
		return ""
	}
	return p.roles[0]
}

// SoleRole returns the declared role when exactly one is set, otherwise "".
// Role pairing is only defined between single-role profiles.
func (p *Profile) SoleRole() string {
	if len(p.roles) != 1 {
		return ""
	}
	return p.roles[0]
}

// Genres returns the favorite genres in declaration order.
func (p *Profile) Genres() []string { return p.genres }

// HasGenre reports whether g is one of the favorite genres.
func (p *Profile) HasGenre(g string) bool {
	for _, x := range p.genres {
		if x == g {
			return true
		}
	}
	return false
}

// Bio returns the free-text biography.
func (p *Profile) Bio() string { return p.bio }

// BioLength returns the biography length in characters.
func (p *Profile) BioLength() int { return utf8.RuneCountInString(p.bio) }

// ProfileImageURL returns the profile image reference, possibly empty.
func (p *Profile) ProfileImageURL() string { return p.profileImageURL }

// PortfolioLinks returns the portfolio links.
func (p *Profile) PortfolioLinks() []string { return p.portfolioLinks }

// Location returns the optional location.
func (p *Profile) Location() string { return p.location }

// Fields returns a copy of the mutable attributes.
func (p *Profile) Fields() Fields {
	return Fields{
		Name:            p.name,
		Roles:           append([]string(nil), p.roles...),
		Genres:          append([]string(nil), p.genres...),
		Bio:             p.bio,
		ProfileImageURL: p.profileImageURL,
		PortfolioLinks:  append([]string(nil), p.portfolioLinks...),
		Location:        p.location,
	}
}

func orderedSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
