package project

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxTags caps the number of tags on a project.
const MaxTags = 30

// Visibility controls who may see a project.
type Visibility string

const (
	// Public projects are listed, scored and recommended.
	Public Visibility = "public"
	// Private projects are visible to their owner only.
	Private Visibility = "private"
)

// ParseVisibility maps a raw value to a Visibility. Empty means public.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case "", Public:
		return Public, nil
	case Private:
		return Private, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", s)
	}
}

// Fields carries the attributes of a project.
type Fields struct {
	Title       string
	Genre       string
	Tags        []string
	Description string
	PosterURL   string
	VideoURL    string
	OwnerID     string
	CreatedAt   time.Time
	Visibility  Visibility
}

// Project is an uploaded film project (immutable value object).
type Project struct {
	id          string
	title       string
	genre       string
	tags        []string
	description string
	posterURL   string
	videoURL    string
	ownerID     string
	createdAt   time.Time
	visibility  Visibility
}

// New validates and creates a Project.
func New(id string, f Fields) (Project, error) {
	if id == "" {
		return Project{}, fmt.Errorf("project ID is required")
	}
	if len(id) > 128 || !idRegex.MatchString(id) {
		return Project{}, fmt.Errorf("project ID must be 1-128 alphanumeric, underscore or hyphen characters")
	}
	if strings.TrimSpace(f.Title) == "" {
		return Project{}, fmt.Errorf("title is required")
	}
	if f.OwnerID == "" {
		return Project{}, fmt.Errorf("owner is required")
	}
	if len(f.Tags) > MaxTags {
		return Project{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}
	if _, err := ParseVisibility(string(f.Visibility)); err != nil {
		return Project{}, err
	}
	return Reconstruct(id, f), nil
}

// Reconstruct creates a Project without validation (storage hydration).
// An unknown visibility is treated as private so it can never leak.
func Reconstruct(id string, f Fields) Project {
	vis, err := ParseVisibility(string(f.Visibility))
	if err != nil {
		vis = Private
	}
	return Project{
		id:          id,
		title:       f.Title,
		genre:       f.Genre,
		tags:        dedupe(f.Tags),
		description: f.Description,
		posterURL:   f.PosterURL,
		videoURL:    f.VideoURL,
		ownerID:     f.OwnerID,
		createdAt:   f.CreatedAt,
		visibility:  vis,
	}
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Title returns the project title.
func (p *Project) Title() string { return p.title }

// Genre returns the single project genre, possibly empty.
func (p *Project) Genre() string { return p.genre }

// Tags returns the project tags.
func (p *Project) Tags() []string { return p.tags }

// HasTag reports whether t is one of the project tags.
func (p *Project) HasTag(t string) bool {
	for _, x := range p.tags {
		if x == t {
			return true
		}
	}
	return false
}

// Description returns the free-text description.
func (p *Project) Description() string { return p.description }

// DescriptionLength returns the description length in characters.
func (p *Project) DescriptionLength() int { return utf8.RuneCountInString(p.description) }

// PosterURL returns the poster reference, possibly empty.
func (p *Project) PosterURL() string { return p.posterURL }

// VideoURL returns the video reference, possibly empty.
func (p *Project) VideoURL() string { return p.videoURL }

// OwnerID returns the id of the uploading user.
func (p *Project) OwnerID() string { return p.ownerID }

// CreatedAt returns the creation time; zero when unknown.
func (p *Project) CreatedAt() time.Time { return p.createdAt }

// Visibility returns the project visibility.
func (p *Project) Visibility() Visibility { return p.visibility }

// IsPublic reports whether the project may be shown to other users.
func (p *Project) IsPublic() bool { return p.visibility == Public }

// Age returns how long ago the project was created. ok is false when the
// creation time is unknown.
func (p *Project) Age(now time.Time) (age time.Duration, ok bool) {
	if p.createdAt.IsZero() {
		return 0, false
	}
	return now.Sub(p.createdAt), true
}

// Fields returns a copy of the attributes.
func (p *Project) Fields() Fields {
	return Fields{
		Title:       p.title,
		Genre:       p.genre,
		Tags:        append([]string(nil), p.tags...),
		Description: p.description,
		PosterURL:   p.posterURL,
		VideoURL:    p.videoURL,
		OwnerID:     p.ownerID,
		CreatedAt:   p.createdAt,
		Visibility:  p.visibility,
	}
}

func dedupe(in []string) []string {
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
