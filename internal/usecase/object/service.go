package object

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/blob"
)

// DefaultUploadTTL is how long an issued upload URL stays valid.
const DefaultUploadTTL = 15 * time.Minute

// Service issues upload targets and opens stored objects.
type Service struct {
	bucket Bucket
	prefix string
	ttl    time.Duration
}

// New creates an object service. A nil bucket disables every operation
// with domain.ErrStorageDisabled.
func New(bucket Bucket, uploadPrefix string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultUploadTTL
	}
	return &Service{bucket: bucket, prefix: uploadPrefix, ttl: ttl}
}

// Enabled reports whether a bucket is configured.
func (s *Service) Enabled() bool { return s.bucket != nil }

// IssueUpload reserves a fresh object name and signs a PUT URL for it.
func (s *Service) IssueUpload(ctx context.Context) (blob.Upload, error) {
	if s.bucket == nil {
		return blob.Upload{}, domain.ErrStorageDisabled
	}

	name := path.Join(s.prefix, uuid.NewString())
	u, err := s.bucket.SignedPutURL(ctx, name, s.ttl)
	if err != nil {
		return blob.Upload{}, fmt.Errorf("issue upload: %w", err)
	}
	return blob.Upload{URL: u, Path: blob.PathFor(name)}, nil
}

// Open resolves a serving path such as /objects/uploads/<id> and opens the object.
func (s *Service) Open(ctx context.Context, servingPath string) (blob.Object, error) {
	if s.bucket == nil {
		return blob.Object{}, domain.ErrStorageDisabled
	}

	name, ok := blob.NameFromPath(servingPath)
	if !ok {
		return blob.Object{}, domain.ErrObjectNotFound
	}
	obj, err := s.bucket.Open(ctx, name)
	if err != nil {
		return blob.Object{}, fmt.Errorf("open object: %w", err)
	}
	return obj, nil
}
