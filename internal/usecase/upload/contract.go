package upload

import (
	"context"
	"time"

	domupload "github.com/kailas-cloud/soartv/internal/domain/upload"
)

// Store persists fallback project records.
type Store interface {
	Append(ctx context.Context, rec domupload.Record) error
	ListByUser(ctx context.Context, userID string) ([]domupload.Record, error)
}

// Clock returns the current time.
type Clock func() time.Time
