package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/soartv/internal/domain"
	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
)

// --- Mocks ---

type mockRepo struct {
	saved   []domprofile.Profile
	saveErr error
	getFn   func(ctx context.Context, id string) (domprofile.Profile, error)
}

func (m *mockRepo) Save(_ context.Context, p domprofile.Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, p)
	return nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domprofile.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domprofile.Profile{}, domain.ErrProfileNotFound
}

// --- Tests ---

func TestSave_Valid(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	p, err := svc.Save(context.Background(), "u1", domprofile.Fields{Name: "Ada", Genres: []string{"Drama"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "u1" || len(repo.saved) != 1 {
		t.Errorf("expected profile u1 saved once, got %d saves", len(repo.saved))
	}
}

func TestSave_InvalidInput(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.Save(context.Background(), "u1", domprofile.Fields{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("invalid profile must not be saved")
	}
}

func TestSave_RepoError(t *testing.T) {
	svc := New(&mockRepo{saveErr: errors.New("readonly")})
	if _, err := svc.Save(context.Background(), "u1", domprofile.Fields{Name: "Ada"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&mockRepo{})
	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
