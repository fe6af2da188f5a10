package profile

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/soartv/internal/domain"
	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
)

// Service handles profile reads and writes.
type Service struct {
	repo Repository
}

// New creates a profile service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save validates and upserts the profile of user id.
func (s *Service) Save(ctx context.Context, id string, f domprofile.Fields) (domprofile.Profile, error) {
	p, err := domprofile.New(id, f)
	if err != nil {
		return domprofile.Profile{}, fmt.Errorf("validate profile: %w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domprofile.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// Get retrieves a profile by user id.
func (s *Service) Get(ctx context.Context, id string) (domprofile.Profile, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprofile.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}
