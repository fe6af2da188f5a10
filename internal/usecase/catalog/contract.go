package catalog

import (
	"context"

	"github.com/kailas-cloud/soartv/internal/domain/video"
)

// Repository is the read-only video catalog.
type Repository interface {
	List(ctx context.Context) ([]video.Video, error)
	ListByCategory(ctx context.Context, category string) ([]video.Video, error)
	Get(ctx context.Context, id int) (video.Video, error)
}
