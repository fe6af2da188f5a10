// Package match holds the transient output of the recommendation engine.
package match

import (
	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/project"
)

const (
	// Threshold is the noise cutoff: only candidates scoring strictly above it are returned.
	Threshold = 30
	// MaxResults caps every recommendation list.
	MaxResults = 12
	// MinScore and MaxScore bound every compatibility score.
	MinScore = 0
	MaxScore = 100
)

// Placeholder uploader identity used when the owner's profile cannot be loaded.
const (
	PlaceholderName = "Unknown User"
	PlaceholderRole = "Filmmaker"
)

// Uploader is the projection of a project owner's profile shown next to a project.
type Uploader struct {
	ID              string
	Name            string
	Role            string
	ProfileImageURL string
}

// UploaderFromProfile projects a profile onto the uploader shape.
func UploaderFromProfile(p *profile.Profile) Uploader {
	return Uploader{
		ID:              p.ID(),
		Name:            p.Name(),
		Role:            p.PrimaryRole(),
		ProfileImageURL: p.ProfileImageURL(),
	}
}

// PlaceholderUploader returns the substitute identity for a missing uploader.
func PlaceholderUploader(ownerID string) Uploader {
	return Uploader{ID: ownerID, Name: PlaceholderName, Role: PlaceholderRole}
}

// ScoredUser is a recommended collaborator.
type ScoredUser struct {
	Profile  profile.Profile
	Score    int
	Reasons  []string
	Projects []project.Project
}

// ScoredProject is a recommended project.
type ScoredProject struct {
	Project  project.Project
	Score    int
	Reasons  []string
	Uploader Uploader
}

// Recommendations is the engine output for one requester.
type Recommendations struct {
	Users    []ScoredUser
	Projects []ScoredProject
}

// Empty returns recommendations with both lists empty (never nil).
func Empty() Recommendations {
	return Recommendations{Users: []ScoredUser{}, Projects: []ScoredProject{}}
}

// IsEmpty reports whether both lists are empty.
func (r Recommendations) IsEmpty() bool {
	return len(r.Users) == 0 && len(r.Projects) == 0
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
