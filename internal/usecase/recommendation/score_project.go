package recommendation

import (
	"time"

	"github.com/kailas-cloud/soartv/internal/domain/match"
	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/project"
)

// Project scoring weights.
const (
	genreMatchPoints          = 40
	pointsPerTag              = 10
	maxTagPoints              = 30
	newProjectPoints          = 20
	recentProjectPoints       = 10
	qualityPoints             = 5
	detailedDescriptionLength = 100

	newProjectAge    = 7 * 24 * time.Hour
	recentProjectAge = 30 * 24 * time.Hour
)

// ScoreProject rates how relevant p is to requester at time now. Tags are
// matched against the requester's genre list; there is no separate tag vocabulary.
func ScoreProject(requester *profile.Profile, p *project.Project, now time.Time) (score int, reasons []string) {
	genreMatch := requester.HasGenre(p.Genre())
	genreTerm := 0
	if genreMatch {
		genreTerm = genreMatchPoints
	}

	tagged := sharedGenres(requester.Genres(), p.HasTag)
	tagTerm := min(len(tagged)*pointsPerTag, maxTagPoints)

	recencyTerm := 0
	age, known := p.Age(now)
	isNew := known && age < newProjectAge
	switch {
	case isNew:
		recencyTerm = newProjectPoints
	case known && age < recentProjectAge:
		recencyTerm = recentProjectPoints
	}

	qualityTerm := 0
	if p.DescriptionLength() > detailedDescriptionLength {
		qualityTerm += qualityPoints
	}
	if p.PosterURL() != "" {
		qualityTerm += qualityPoints
	}

	score = match.Clamp(genreTerm + tagTerm + recencyTerm + qualityTerm)

	reasons = make([]string, 0, 4)
	if genreMatch {
		reasons = append(reasons, "Matches your "+p.Genre()+" interest")
	}
	if len(tagged) > 0 {
		reasons = append(reasons, "Tagged with "+tagged[0])
	}
	if isNew {
		reasons = append(reasons, "Recently uploaded")
	}
	if p.DescriptionLength() > detailedDescriptionLength {
		reasons = append(reasons, "Detailed project description")
	}
	return score, reasons
}
