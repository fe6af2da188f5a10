package profile

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	p, err := New("user_1", Fields{
		Name:   "Ada",
		Roles:  []string{"Director", "Writer"},
		Genres: []string{"Drama", "Horror"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "user_1" {
		t.Errorf("expected id user_1, got %q", p.ID())
	}
	if p.PrimaryRole() != "Director" {
		t.Errorf("expected primary role Director, got %q", p.PrimaryRole())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Fields
	}{
		{"empty id", "", Fields{Name: "x"}},
		{"bad id chars", "a:b", Fields{Name: "x"}},
		{"too long id", strings.Repeat("a", 129), Fields{Name: "x"}},
		{"missing name", "u1", Fields{Name: "  "}},
		{"bio too long", "u1", Fields{Name: "x", Bio: strings.Repeat("b", MaxBioLength+1)}},
		{"too many genres", "u1", Fields{Name: "x", Genres: make([]string, MaxGenres+1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, tc.f); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestReconstruct_NormalizesGenresAndRoles(t *testing.T) {
	p := Reconstruct("u1", Fields{
		Roles:          []string{"", "Actor", "Actor"},
		Genres:         []string{"Drama", "", "Drama", "Horror"},
		PortfolioLinks: []string{" ", "https://example.com"},
	})

	if got := p.Genres(); len(got) != 2 || got[0] != "Drama" || got[1] != "Horror" {
		t.Errorf("unexpected genres: %v", got)
	}
	if got := p.Roles(); len(got) != 1 || got[0] != "Actor" {
		t.Errorf("unexpected roles: %v", got)
	}
	if len(p.PortfolioLinks()) != 1 {
		t.Errorf("expected 1 portfolio link, got %d", len(p.PortfolioLinks()))
	}
}

func TestReconstruct_MissingFieldsAreEmpty(t *testing.T) {
	p := Reconstruct("u1", Fields{})
	if p.PrimaryRole() != "" {
		t.Errorf("expected empty primary role, got %q", p.PrimaryRole())
	}
	if len(p.Genres()) != 0 {
		t.Errorf("expected no genres, got %v", p.Genres())
	}
	if p.HasGenre("") {
		t.Error("empty genre must never match")
	}
}

func TestSoleRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{"none", nil, ""},
		{"single", []string{"Editor"}, "Editor"},
		{"several", []string{"Director", "Writer"}, ""},
		{"duplicates collapse", []string{"Actor", "Actor"}, "Actor"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Reconstruct("u1", Fields{Roles: tc.roles})
			if got := p.SoleRole(); got != tc.want {
				t.Errorf("SoleRole() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBioLength_CountsCharacters(t *testing.T) {
	p := Reconstruct("u1", Fields{Bio: "héllo"})
	if p.BioLength() != 5 {
		t.Errorf("expected 5 characters, got %d", p.BioLength())
	}
}
