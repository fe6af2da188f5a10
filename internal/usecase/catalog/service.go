package catalog

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/soartv/internal/domain/video"
)

// Service serves the sample video catalog.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every video.
func (s *Service) List(ctx context.Context) ([]video.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// ListByCategory returns videos of a category, matched case-insensitively.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]video.Video, error) {
	videos, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list videos by category: %w", err)
	}
	return videos, nil
}

// Get returns one video.
func (s *Service) Get(ctx context.Context, id int) (video.Video, error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return video.Video{}, fmt.Errorf("get video: %w", err)
	}
	return v, nil
}
