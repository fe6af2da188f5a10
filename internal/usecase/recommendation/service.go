package recommendation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/soartv/internal/bounded"
	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/match"
	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/project"
	"github.com/kailas-cloud/soartv/internal/logger"
	"github.com/kailas-cloud/soartv/internal/metrics"
)

// Defaults for Options.
const (
	DefaultRecentLimit           = 50
	DefaultEnrichmentConcurrency = 8
)

// Options tunes candidate fetching. Threshold and cap are fixed in package match.
type Options struct {
	// RecentLimit bounds the general project listing.
	RecentLimit int
	// EnrichmentConcurrency bounds parallel uploader lookups.
	EnrichmentConcurrency int
}

// Service assembles recommendations. It never writes and never fails:
// every collaborator error degrades to a safe default.
type Service struct {
	profiles ProfileReader
	projects ProjectReader
	guard    *bounded.Guard
	now      Clock
	opts     Options
}

// New creates a recommendation service. A nil clock uses time.Now.
func New(profiles ProfileReader, projects ProjectReader, guard *bounded.Guard, now Clock, opts Options) *Service {
	if now == nil {
		now = time.Now
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultRecentLimit
	}
	if opts.EnrichmentConcurrency <= 0 {
		opts.EnrichmentConcurrency = DefaultEnrichmentConcurrency
	}
	return &Service{profiles: profiles, projects: projects, guard: guard, now: now, opts: opts}
}

// snapshot is the candidate data read for one request.
type snapshot struct {
	profiles []profile.Profile
	recent   []project.Project
	tagged   []project.Project
}

// Recommend returns collaborators and projects for requesterID. Both lists
// are non-nil, sorted by score descending and capped at match.MaxResults.
func (s *Service) Recommend(ctx context.Context, requesterID string) match.Recommendations {
	start := time.Now()
	defer func() { metrics.RecommendationDuration.Observe(time.Since(start).Seconds()) }()
	log := logger.FromContext(ctx).With(zap.String("requester_id", requesterID))

	requester, err := bounded.Call(ctx, s.guard, "get_profile", profile.Profile{}, func(ctx context.Context) (profile.Profile, error) {
		return s.profiles.Get(ctx, requesterID)
	})
	if err != nil {
		reason := "store_unavailable"
		if errors.Is(err, domain.ErrNotFound) {
			reason = "no_profile"
		}
		metrics.RecommendationsEmptyTotal.WithLabelValues(reason).Inc()
		log.Debug("no recommendations", zap.String("reason", reason), zap.Error(err))
		return match.Empty()
	}

	snap, err := s.fetch(ctx, &requester)
	if err != nil {
		metrics.RecommendationsEmptyTotal.WithLabelValues("store_unavailable").Inc()
		log.Warn("candidate fetch failed, returning empty recommendations", zap.Error(err))
		return match.Empty()
	}

	now := s.now()
	users := s.rankUsers(&requester, snap)
	projects := s.rankProjects(&requester, snap, now)
	s.enrich(ctx, projects, snap.profiles)

	metrics.RecommendationResults.WithLabelValues("user").Observe(float64(len(users)))
	metrics.RecommendationResults.WithLabelValues("project").Observe(float64(len(projects)))

	out := match.Recommendations{Users: users, Projects: projects}
	if out.IsEmpty() {
		metrics.RecommendationsEmptyTotal.WithLabelValues("no_match").Inc()
	}
	return out
}

// fetch reads profiles, recent projects and the genre-tag supplement in
// parallel. Either bulk listing failing fails the snapshot; a failed
// supplement only leaves it empty.
func (s *Service) fetch(ctx context.Context, requester *profile.Profile) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snap.profiles, err = bounded.Call(gctx, s.guard, "list_profiles", []profile.Profile{}, s.profiles.List)
		return err
	})
	g.Go(func() error {
		var err error
		snap.recent, err = bounded.Call(gctx, s.guard, "list_recent_projects", []project.Project{},
			func(ctx context.Context) ([]project.Project, error) {
				return s.projects.ListRecent(ctx, s.opts.RecentLimit)
			})
		return err
	})
	if genres := requester.Genres(); len(genres) > 0 {
		g.Go(func() error {
			// supplement errors are absorbed by the fallback
			snap.tagged, _ = bounded.Call(gctx, s.guard, "list_tagged_projects", []project.Project{},
				func(ctx context.Context) ([]project.Project, error) {
					return s.projects.ListByTags(ctx, genres)
				})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// rankUsers scores every other profile and keeps the top matches.
func (s *Service) rankUsers(requester *profile.Profile, snap snapshot) []match.ScoredUser {
	owned := make(map[string][]project.Project)
	for i := range snap.recent {
		p := &snap.recent[i]
		if p.IsPublic() {
			owned[p.OwnerID()] = append(owned[p.OwnerID()], *p)
		}
	}

	seen := make(map[string]struct{}, len(snap.profiles))
	scored := make([]match.ScoredUser, 0, len(snap.profiles))
	for i := range snap.profiles {
		candidate := &snap.profiles[i]
		if candidate.ID() == requester.ID() {
			continue
		}
		if _, dup := seen[candidate.ID()]; dup {
			continue
		}
		seen[candidate.ID()] = struct{}{}

		projects := owned[candidate.ID()]
		score, reasons := ScoreUser(requester, candidate, len(projects))
		if score <= match.Threshold {
			continue
		}
		if projects == nil {
			projects = []project.Project{}
		}
		scored = append(scored, match.ScoredUser{
			Profile:  *candidate,
			Score:    score,
			Reasons:  reasons,
			Projects: projects,
		})
	}
	metrics.RecommendationCandidates.WithLabelValues("user").Observe(float64(len(seen)))

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Profile.ID() < scored[j].Profile.ID()
	})
	return truncate(scored)
}

// rankProjects merges the recent listing with the tag supplement, drops the
// requester's own and private projects, scores the rest and keeps the top matches.
func (s *Service) rankProjects(requester *profile.Profile, snap snapshot, now time.Time) []match.ScoredProject {
	seen := make(map[string]struct{}, len(snap.recent)+len(snap.tagged))
	scored := make([]match.ScoredProject, 0, len(snap.recent)+len(snap.tagged))

	consider := func(list []project.Project) {
		for i := range list {
			p := &list[i]
			if !p.IsPublic() || p.OwnerID() == requester.ID() {
				continue
			}
			if _, dup := seen[p.ID()]; dup {
				continue
			}
			seen[p.ID()] = struct{}{}

			score, reasons := ScoreProject(requester, p, now)
			if score <= match.Threshold {
				continue
			}
			scored = append(scored, match.ScoredProject{Project: *p, Score: score, Reasons: reasons})
		}
	}
	consider(snap.recent)
	consider(snap.tagged)
	metrics.RecommendationCandidates.WithLabelValues("project").Observe(float64(len(seen)))

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Project.ID() < scored[j].Project.ID()
	})
	return truncate(scored)
}

// enrich attaches uploader identities. Profiles already in the snapshot are
// reused; the rest are fetched concurrently. A failed lookup yields the
// placeholder identity.
func (s *Service) enrich(ctx context.Context, projects []match.ScoredProject, known []profile.Profile) {
	if len(projects) == 0 {
		return
	}

	byID := make(map[string]match.Uploader, len(known))
	for i := range known {
		byID[known[i].ID()] = match.UploaderFromProfile(&known[i])
	}

	var missing []string
	for i := range projects {
		owner := projects[i].Project.OwnerID()
		if _, ok := byID[owner]; ok {
			continue
		}
		byID[owner] = match.PlaceholderUploader(owner)
		missing = append(missing, owner)
	}

	if len(missing) > 0 {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.EnrichmentConcurrency)
		for _, owner := range missing {
			g.Go(func() error {
				p, err := bounded.Call(gctx, s.guard, "get_uploader", profile.Profile{},
					func(ctx context.Context) (profile.Profile, error) {
						return s.profiles.Get(ctx, owner)
					})
				if err != nil {
					return nil
				}
				u := match.UploaderFromProfile(&p)
				mu.Lock()
				byID[owner] = u
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	for i := range projects {
		projects[i].Uploader = byID[projects[i].Project.OwnerID()]
	}
}

func truncate[T any](list []T) []T {
	if len(list) > match.MaxResults {
		return list[:match.MaxResults]
	}
	return list
}
