package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/soartv/internal/domain"
	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
)

// Service publishes and reads projects.
type Service struct {
	repo Repository
	now  Clock
}

// New creates a project service. A nil clock uses time.Now.
func New(repo Repository, now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Publish validates and stores a project. An empty id is generated,
// a zero created-at becomes now and an empty visibility means public.
func (s *Service) Publish(ctx context.Context, id string, f domproject.Fields) (domproject.Project, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = s.now().UTC()
	}
	if f.Visibility == "" {
		f.Visibility = domproject.Public
	}

	p, err := domproject.New(id, f)
	if err != nil {
		return domproject.Project{}, fmt.Errorf("validate project: %w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domproject.Project{}, fmt.Errorf("save project: %w", err)
	}
	return p, nil
}

// Get retrieves a project by id.
func (s *Service) Get(ctx context.Context, id string) (domproject.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListByOwner returns every project of a user.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domproject.Project, error) {
	projects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
