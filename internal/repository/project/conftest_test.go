package project

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/kailas-cloud/soartv/internal/db"
	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
)

// memStore is an in-memory store for tests. errFn, when set, may fail any op.
type memStore struct {
	kv    map[string][]byte
	sets  map[string]map[string]struct{}
	zsets map[string]map[string]float64
	errFn func(op string) error
}

func newMemStore() *memStore {
	return &memStore{
		kv:    map[string][]byte{},
		sets:  map[string]map[string]struct{}{},
		zsets: map[string]map[string]float64{},
	}
}

func (m *memStore) fail(op string) error {
	if m.errFn != nil {
		return m.errFn(op)
	}
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	if err := m.fail(db.OpGet); err != nil {
		return nil, err
	}
	v, ok := m.kv[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	if err := m.fail(db.OpMGet); err != nil {
		return nil, err
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.kv[k]
	}
	return out, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	if err := m.fail(db.OpSet); err != nil {
		return err
	}
	m.kv[key] = value
	return nil
}

func (m *memStore) SAdd(_ context.Context, key string, members ...string) error {
	if err := m.fail(db.OpSAdd); err != nil {
		return err
	}
	if m.sets[key] == nil {
		m.sets[key] = map[string]struct{}{}
	}
	for _, mem := range members {
		m.sets[key][mem] = struct{}{}
	}
	return nil
}

func (m *memStore) SRem(_ context.Context, key string, members ...string) error {
	if err := m.fail(db.OpSRem); err != nil {
		return err
	}
	for _, mem := range members {
		delete(m.sets[key], mem)
	}
	return nil
}

func (m *memStore) SUnion(_ context.Context, keys ...string) ([]string, error) {
	if err := m.fail(db.OpSUnion); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, k := range keys {
		for mem := range m.sets[k] {
			if _, ok := seen[mem]; !ok {
				seen[mem] = struct{}{}
				out = append(out, mem)
			}
		}
	}
	return out, nil
}

func (m *memStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	if err := m.fail(db.OpZAdd); err != nil {
		return err
	}
	if m.zsets[key] == nil {
		m.zsets[key] = map[string]float64{}
	}
	m.zsets[key][member] = score
	return nil
}

func (m *memStore) ZRem(_ context.Context, key string, members ...string) error {
	if err := m.fail(db.OpZRem); err != nil {
		return err
	}
	for _, mem := range members {
		delete(m.zsets[key], mem)
	}
	return nil
}

func (m *memStore) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	if err := m.fail(db.OpZRevRange); err != nil {
		return nil, err
	}
	z := m.zsets[key]
	members := make([]string, 0, len(z))
	for mem := range z {
		members = append(members, mem)
	}
	sort.Slice(members, func(i, j int) bool {
		if z[members[i]] != z[members[j]] {
			return z[members[i]] > z[members[j]]
		}
		return members[i] > members[j]
	})
	n := int64(len(members))
	if stop < 0 || stop >= n {
		stop = n - 1
	}
	if start >= n || start > stop {
		return []string{}, nil
	}
	return members[start : stop+1], nil
}

func (m *memStore) inSet(key, member string) bool {
	_, ok := m.sets[key][member]
	return ok
}

func (m *memStore) inZSet(key, member string) bool {
	_, ok := m.zsets[key][member]
	return ok
}

func newTestRepo(t *testing.T) (*Repo, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(ms), ms
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testProject(t *testing.T, id, owner string, vis domproject.Visibility, ageDays int, tags ...string) domproject.Project {
	t.Helper()
	p, err := domproject.New(id, domproject.Fields{
		Title:      "Project " + id,
		Genre:      "Drama",
		Tags:       tags,
		OwnerID:    owner,
		CreatedAt:  baseTime.Add(-time.Duration(ageDays) * 24 * time.Hour),
		Visibility: vis,
	})
	if err != nil {
		t.Fatalf("build project: %v", err)
	}
	return p
}

func mustSave(t *testing.T, repo *Repo, p domproject.Project) {
	t.Helper()
	if err := repo.Save(context.Background(), p); err != nil {
		t.Fatalf("save %s: %v", p.ID(), err)
	}
}
