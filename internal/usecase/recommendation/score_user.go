package recommendation

import (
	"math"

	"github.com/kailas-cloud/soartv/internal/domain/match"
	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/role"
)

// Profile scoring weights.
const (
	maxGenreOverlapPoints = 30
	pointsPerProject      = 3
	maxActivityPoints     = 15
	completenessPoints    = 5
	detailedBioLength     = 50
	activeProjectCount    = 2
	roleReasonAbove       = 25
)

// ScoreUser rates how well candidate complements requester. projectCount is
// the candidate's number of projects, joined by the caller.
func ScoreUser(requester, candidate *profile.Profile, projectCount int) (score int, reasons []string) {
	shared := sharedGenres(requester.Genres(), candidate.HasGenre)
	genreTerm := math.Min(
		float64(len(shared))/float64(max(len(requester.Genres()), 1))*maxGenreOverlapPoints,
		maxGenreOverlapPoints,
	)

	requesterRole, candidateRole := requester.SoleRole(), candidate.SoleRole()
	roleTerm := role.Compatibility(role.Role(requesterRole), role.Role(candidateRole))

	activityTerm := min(projectCount*pointsPerProject, maxActivityPoints)

	completenessTerm := 0
	if candidate.BioLength() > detailedBioLength {
		completenessTerm += completenessPoints
	}
	if candidate.ProfileImageURL() != "" {
		completenessTerm += completenessPoints
	}
	if len(candidate.PortfolioLinks()) > 0 {
		completenessTerm += completenessPoints
	}

	total := genreTerm + float64(roleTerm+activityTerm+completenessTerm)
	score = match.Clamp(int(math.Round(total)))

	reasons = make([]string, 0, 4)
	if len(shared) > 0 {
		reasons = append(reasons, "Both interested in "+shared[0])
	}
	if roleTerm > roleReasonAbove {
		reasons = append(reasons, requesterRole+" + "+candidateRole+" collaboration")
	}
	if projectCount > activeProjectCount {
		reasons = append(reasons, "Active filmmaker with multiple projects")
	}
	if candidate.BioLength() > detailedBioLength {
		reasons = append(reasons, "Detailed profile and experience")
	}
	return score, reasons
}

// sharedGenres keeps genres in requester order that satisfy has.
func sharedGenres(genres []string, has func(string) bool) []string {
	var out []string
	for _, g := range genres {
		if has(g) {
			out = append(out, g)
		}
	}
	return out
}
