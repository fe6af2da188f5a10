package recommendation

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/soartv/internal/domain/match"
	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/project"
)

var now = time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

// --- ScoreUser ---

func TestScoreUser_DirectorActorExample(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{
		Name:   "Req",
		Roles:  []string{"Director"},
		Genres: []string{"Drama", "Horror"},
	})
	candidate := profile.Reconstruct("c", profile.Fields{
		Name:            "Cand",
		Roles:           []string{"Actor"},
		Genres:          []string{"Drama"},
		Bio:             strings.Repeat("x", 60),
		ProfileImageURL: "https://img.example/c.png",
	})

	score, reasons := ScoreUser(&requester, &candidate, 5)
	if score != 75 {
		t.Errorf("expected 75, got %d", score)
	}
	want := []string{
		"Both interested in Drama",
		"Director + Actor collaboration",
		"Active filmmaker with multiple projects",
		"Detailed profile and experience",
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("unexpected reasons:\n got %q\nwant %q", reasons, want)
	}
}

func TestScoreUser_RequesterWithoutGenres(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{Roles: []string{"Director"}})
	candidate := profile.Reconstruct("c", profile.Fields{
		Roles:  []string{"Actor"},
		Genres: []string{"Drama", "Horror"},
	})

	score, reasons := ScoreUser(&requester, &candidate, 0)
	if score != 35 {
		t.Errorf("expected role term only (35), got %d", score)
	}
	if len(reasons) != 1 || reasons[0] != "Director + Actor collaboration" {
		t.Errorf("unexpected reasons: %q", reasons)
	}
}

func TestScoreUser_MissingFieldsUseDefaults(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{})
	candidate := profile.Reconstruct("c", profile.Fields{})

	score, reasons := ScoreUser(&requester, &candidate, 0)
	if score != 10 {
		t.Errorf("expected default role score 10, got %d", score)
	}
	if len(reasons) != 0 {
		t.Errorf("expected no reasons, got %q", reasons)
	}
}

func TestScoreUser_MultiRoleUsesDefault(t *testing.T) {
	tests := []struct {
		name           string
		requesterRoles []string
		candidateRoles []string
		wantScore      int
	}{
		{"single roles use table", []string{"Director"}, []string{"Actor"}, 35},
		{"multi-role requester", []string{"Director", "Writer"}, []string{"Actor"}, 10},
		{"multi-role candidate", []string{"Director"}, []string{"Actor", "Editor"}, 10},
		{"both multi-role", []string{"Director", "Producer"}, []string{"Actor", "Writer"}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requester := profile.Reconstruct("r", profile.Fields{Roles: tc.requesterRoles})
			candidate := profile.Reconstruct("c", profile.Fields{Roles: tc.candidateRoles})

			score, reasons := ScoreUser(&requester, &candidate, 0)
			if score != tc.wantScore {
				t.Errorf("expected %d, got %d", tc.wantScore, score)
			}
			if tc.wantScore == 10 && len(reasons) != 0 {
				t.Errorf("multi-role pairing must not give a collaboration reason: %q", reasons)
			}
		})
	}
}

func TestScoreUser_TermCaps(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{
		Roles:  []string{"Director"},
		Genres: []string{"Drama"},
	})
	candidate := profile.Reconstruct("c", profile.Fields{
		Roles:           []string{"Actor"},
		Genres:          []string{"Drama", "Horror"},
		Bio:             strings.Repeat("b", 51),
		ProfileImageURL: "img",
		PortfolioLinks:  []string{"https://reel.example"},
	})

	score, _ := ScoreUser(&requester, &candidate, 100)
	// 30 genre + 35 role + 15 activity + 15 completeness
	if score != 95 {
		t.Errorf("expected 95, got %d", score)
	}
}

func TestScoreUser_GenreOverlapRounding(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{
		Roles:  []string{"Editor"},
		Genres: []string{"Drama", "Horror", "Comedy"},
	})
	candidate := profile.Reconstruct("c", profile.Fields{
		Roles:  []string{"Writer"},
		Genres: []string{"Drama"},
	})

	score, reasons := ScoreUser(&requester, &candidate, 0)
	// 10 genre + 20 role
	if score != 30 {
		t.Errorf("expected 30, got %d", score)
	}
	if len(reasons) != 1 {
		t.Errorf("role 20 must not produce a collaboration reason: %q", reasons)
	}
}

func TestScoreUser_GenreOverlapMonotonic(t *testing.T) {
	genres := []string{"Drama", "Horror", "Comedy", "Thriller", "Sci-Fi"}
	requester := profile.Reconstruct("r", profile.Fields{Roles: []string{"Producer"}, Genres: genres})

	prev := -1
	for n := 0; n <= len(genres); n++ {
		candidate := profile.Reconstruct("c", profile.Fields{Roles: []string{"Writer"}, Genres: genres[:n]})
		score, _ := ScoreUser(&requester, &candidate, 1)
		if score < prev {
			t.Fatalf("score decreased from %d to %d at overlap %d", prev, score, n)
		}
		prev = score
	}
}

// --- ScoreProject ---

func TestScoreProject_BelowThresholdExample(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{Genres: []string{"Drama"}})
	p := project.Reconstruct("p", project.Fields{
		Genre:       "Horror",
		Description: strings.Repeat("d", 150),
		CreatedAt:   daysAgo(2),
		Visibility:  project.Public,
	})

	score, reasons := ScoreProject(&requester, &p, now)
	if score != 25 {
		t.Errorf("expected 25, got %d", score)
	}
	if score > match.Threshold {
		t.Error("example project must fall under the threshold")
	}
	want := []string{"Recently uploaded", "Detailed project description"}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("unexpected reasons: %q", reasons)
	}
}

func TestScoreProject_FullMatch(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{Genres: []string{"Drama", "Horror", "Comedy"}})
	p := project.Reconstruct("p", project.Fields{
		Genre:       "Drama",
		Tags:        []string{"Comedy", "Horror", "Drama"},
		Description: strings.Repeat("d", 101),
		PosterURL:   "poster.jpg",
		CreatedAt:   daysAgo(1),
		Visibility:  project.Public,
	})

	score, reasons := ScoreProject(&requester, &p, now)
	if score != 100 {
		t.Errorf("expected 100, got %d", score)
	}
	want := []string{
		"Matches your Drama interest",
		"Tagged with Drama",
		"Recently uploaded",
		"Detailed project description",
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("unexpected reasons: %q", reasons)
	}
}

func TestScoreProject_Recency(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{})
	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"today", now, 20},
		{"six days", daysAgo(6), 20},
		{"seven days", daysAgo(7), 10},
		{"twenty nine days", daysAgo(29), 10},
		{"thirty days", daysAgo(30), 0},
		{"unknown", time.Time{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := project.Reconstruct("p", project.Fields{CreatedAt: tc.createdAt, Visibility: project.Public})
			if got, _ := ScoreProject(&requester, &p, now); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestScoreProject_EmptyGenreNeverMatches(t *testing.T) {
	requester := profile.Reconstruct("r", profile.Fields{Genres: []string{"Drama"}})
	p := project.Reconstruct("p", project.Fields{Genre: "", Visibility: project.Public})

	if score, reasons := ScoreProject(&requester, &p, now); score != 0 || len(reasons) != 0 {
		t.Errorf("expected 0 and no reasons, got %d %q", score, reasons)
	}
}

// --- Bounds ---

func TestScores_AlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	genres := []string{"Drama", "Horror", "Comedy", "Thriller", "Sci-Fi", "Romance"}
	roles := []string{"Director", "Actor", "Cinematographer", "Editor", "Producer", "Writer", "Composer", ""}

	pick := func() []string {
		var out []string
		for _, g := range genres {
			if rng.IntN(2) == 0 {
				out = append(out, g)
			}
		}
		return out
	}

	for i := 0; i < 500; i++ {
		requester := profile.Reconstruct("r", profile.Fields{
			Roles:  []string{roles[rng.IntN(len(roles))]},
			Genres: pick(),
		})
		candidate := profile.Reconstruct("c", profile.Fields{
			Roles:           []string{roles[rng.IntN(len(roles))]},
			Genres:          pick(),
			Bio:             strings.Repeat("b", rng.IntN(120)),
			ProfileImageURL: strings.Repeat("i", rng.IntN(2)),
			PortfolioLinks:  pick(),
		})
		if s, _ := ScoreUser(&requester, &candidate, rng.IntN(50)); s < match.MinScore || s > match.MaxScore {
			t.Fatalf("user score out of bounds: %d", s)
		}

		p := project.Reconstruct("p", project.Fields{
			Genre:       genres[rng.IntN(len(genres))],
			Tags:        pick(),
			Description: strings.Repeat("d", rng.IntN(200)),
			PosterURL:   strings.Repeat("p", rng.IntN(2)),
			CreatedAt:   daysAgo(rng.IntN(60) - 5),
			Visibility:  project.Public,
		})
		if s, _ := ScoreProject(&requester, &p, now); s < match.MinScore || s > match.MaxScore {
			t.Fatalf("project score out of bounds: %d", s)
		}
	}
}
