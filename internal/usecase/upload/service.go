package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/soartv/internal/domain"
	domupload "github.com/kailas-cloud/soartv/internal/domain/upload"
)

// Service records uploaded projects in the fallback store.
type Service struct {
	store Store
	now   Clock
}

// New creates an upload service. A nil clock uses time.Now.
func New(store Store, now Clock) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Save records a public project for an uploaded video. VideoURL, Title and
// UserID are required.
func (s *Service) Save(ctx context.Context, d domupload.Draft) (domupload.Record, error) {
	if strings.TrimSpace(d.VideoURL) == "" || strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.UserID) == "" {
		return domupload.Record{}, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}

	rec := domupload.Record{
		ID:          "upload_" + uuid.NewString(),
		Title:       d.Title,
		Description: d.Description,
		UploadedBy:  d.UserID,
		VideoURL:    d.VideoURL,
		CreatedAt:   s.now().UTC(),
		Visibility:  "public",
		Tags:        []string{},
		Cast:        []string{},
		Crew:        []string{},
		Source:      domupload.Source,
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return domupload.Record{}, fmt.Errorf("save upload: %w", err)
	}
	return rec, nil
}

// ListByUser returns the user's records, empty when there are none.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domupload.Record, error) {
	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return recs, nil
}
