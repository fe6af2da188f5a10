package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/soartv/internal/db"
	"github.com/kailas-cloud/soartv/internal/domain"
	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
)

// store is the consumer interface for profiles (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SAdd(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements profile storage on top of a key-value store.
type Repo struct {
	store store
}

// New creates a profile repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get retrieves a profile by user id.
func (r *Repo) Get(ctx context.Context, id string) (domprofile.Profile, error) {
	data, err := r.store.Get(ctx, profileKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domprofile.Profile{}, domain.ErrProfileNotFound
		}
		return domprofile.Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	return profileFromJSON(data)
}

// List returns every stored profile. Ids without a document are skipped.
func (r *Repo) List(ctx context.Context) ([]domprofile.Profile, error) {
	ids, err := r.store.SMembers(ctx, indexKey())
	if err != nil {
		return nil, fmt.Errorf("list profile ids: %w", err)
	}
	if len(ids) == 0 {
		return []domprofile.Profile{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(id)
	}
	docs, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget profiles: %w", err)
	}

	profiles := make([]domprofile.Profile, 0, len(docs))
	for i, data := range docs {
		if data == nil {
			continue
		}
		p, err := profileFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse profile %s: %w", ids[i], err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Save upserts a profile and registers it in the id index.
func (r *Repo) Save(ctx context.Context, p domprofile.Profile) error {
	data, err := profileToJSON(&p)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, profileKey(p.ID()), data); err != nil {
		return fmt.Errorf("set profile %s: %w", p.ID(), err)
	}
	if err := r.store.SAdd(ctx, indexKey(), p.ID()); err != nil {
		return fmt.Errorf("index profile %s: %w", p.ID(), err)
	}
	return nil
}

// Key patterns: soartv:profile:{id}, soartv:profiles

func profileKey(id string) string {
	return fmt.Sprintf("%sprofile:%s", domain.KeyPrefix, id)
}

func indexKey() string {
	return domain.KeyPrefix + "profiles"
}
