package object

import (
	"context"
	"time"

	"github.com/kailas-cloud/soartv/internal/domain/blob"
)

// Bucket is the blob store behind uploads and object serving.
type Bucket interface {
	SignedPutURL(ctx context.Context, object string, ttl time.Duration) (string, error)
	Open(ctx context.Context, object string) (blob.Object, error)
}
