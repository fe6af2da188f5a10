package project

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kailas-cloud/soartv/internal/db"
	"github.com/kailas-cloud/soartv/internal/domain"
	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
)

// store is the consumer interface for projects (ISP).
//
//nolint:interfacebloat // project repo maintains a document plus three index kinds
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SUnion(ctx context.Context, keys ...string) ([]string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo implements project storage with public, owner and tag indexes.
// Private projects never enter the public or tag indexes.
type Repo struct {
	store store
}

// New creates a project repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get retrieves a project by id regardless of visibility.
func (r *Repo) Get(ctx context.Context, id string) (domproject.Project, error) {
	data, err := r.store.Get(ctx, projectKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domproject.Project{}, domain.ErrProjectNotFound
		}
		return domproject.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return projectFromJSON(data)
}

// Save upserts a project and reconciles its index entries with the
// previously stored version.
func (r *Repo) Save(ctx context.Context, p domproject.Project) error {
	prev, err := r.Get(ctx, p.ID())
	hasPrev := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	data, err := projectToJSON(&p)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, projectKey(p.ID()), data); err != nil {
		return fmt.Errorf("set project %s: %w", p.ID(), err)
	}

	score := float64(p.CreatedAt().UnixMilli())
	if p.CreatedAt().IsZero() {
		score = 0
	}

	if hasPrev && prev.OwnerID() != p.OwnerID() {
		if err := r.store.ZRem(ctx, ownerKey(prev.OwnerID()), p.ID()); err != nil {
			return fmt.Errorf("unindex project owner: %w", err)
		}
	}
	if err := r.store.ZAdd(ctx, ownerKey(p.OwnerID()), score, p.ID()); err != nil {
		return fmt.Errorf("index project owner: %w", err)
	}

	var staleTags []string
	if hasPrev && prev.IsPublic() {
		for _, tag := range prev.Tags() {
			if !p.IsPublic() || !p.HasTag(tag) {
				staleTags = append(staleTags, tag)
			}
		}
	}
	for _, tag := range staleTags {
		if err := r.store.SRem(ctx, tagKey(tag), p.ID()); err != nil {
			return fmt.Errorf("unindex tag %s: %w", tag, err)
		}
	}

	if !p.IsPublic() {
		if err := r.store.ZRem(ctx, publicKey(), p.ID()); err != nil {
			return fmt.Errorf("unindex public project: %w", err)
		}
		return nil
	}

	if err := r.store.ZAdd(ctx, publicKey(), score, p.ID()); err != nil {
		return fmt.Errorf("index public project: %w", err)
	}
	for _, tag := range p.Tags() {
		if err := r.store.SAdd(ctx, tagKey(tag), p.ID()); err != nil {
			return fmt.Errorf("index tag %s: %w", tag, err)
		}
	}
	return nil
}

// ListRecent returns up to limit public projects, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domproject.Project, error) {
	if limit <= 0 {
		return []domproject.Project{}, nil
	}
	ids, err := r.store.ZRevRange(ctx, publicKey(), 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	return r.hydrate(ctx, ids, true)
}

// ListByTags returns public projects carrying at least one of the tags,
// newest first with ties broken by id.
func (r *Repo) ListByTags(ctx context.Context, tags []string) ([]domproject.Project, error) {
	if len(tags) == 0 {
		return []domproject.Project{}, nil
	}
	keys := make([]string, len(tags))
	for i, tag := range tags {
		keys[i] = tagKey(tag)
	}
	ids, err := r.store.SUnion(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("list projects by tags: %w", err)
	}

	projects, err := r.hydrate(ctx, ids, true)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		ti, tj := projects[i].CreatedAt(), projects[j].CreatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return projects[i].ID() < projects[j].ID()
	})
	return projects, nil
}

// ListByOwner returns every project of a user, private ones included, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domproject.Project, error) {
	ids, err := r.store.ZRevRange(ctx, ownerKey(ownerID), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", ownerID, err)
	}
	return r.hydrate(ctx, ids, false)
}

// hydrate loads documents for ids, skipping missing keys. With publicOnly,
// projects that turned private after indexing are dropped.
func (r *Repo) hydrate(ctx context.Context, ids []string, publicOnly bool) ([]domproject.Project, error) {
	if len(ids) == 0 {
		return []domproject.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}
	docs, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget projects: %w", err)
	}

	projects := make([]domproject.Project, 0, len(docs))
	for i, data := range docs {
		if data == nil {
			continue
		}
		p, err := projectFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse project %s: %w", ids[i], err)
		}
		if publicOnly && !p.IsPublic() {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Key patterns: soartv:project:{id}, soartv:projects:public,
// soartv:projects:owner:{uid}, soartv:projects:tag:{tag}

func projectKey(id string) string {
	return fmt.Sprintf("%sproject:%s", domain.KeyPrefix, id)
}

func publicKey() string {
	return domain.KeyPrefix + "projects:public"
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("%sprojects:owner:%s", domain.KeyPrefix, ownerID)
}

func tagKey(tag string) string {
	return fmt.Sprintf("%sprojects:tag:%s", domain.KeyPrefix, tag)
}
