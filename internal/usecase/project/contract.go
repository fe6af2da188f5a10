package project

import (
	"context"
	"time"

	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
)

// Repository defines the storage contract for projects.
type Repository interface {
	Get(ctx context.Context, id string) (domproject.Project, error)
	Save(ctx context.Context, p domproject.Project) error
	ListByOwner(ctx context.Context, ownerID string) ([]domproject.Project, error)
}

// Clock returns the current time.
type Clock func() time.Time
