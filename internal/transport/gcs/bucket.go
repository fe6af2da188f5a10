// Package gcs adapts a Google Cloud Storage bucket to the object use case.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/blob"
)

// Config holds bucket connection settings.
type Config struct {
	Bucket string
	// CredentialsFile is a service account key. Empty uses application default credentials.
	CredentialsFile string
	// Endpoint overrides the API endpoint (emulators). Implies no authentication.
	Endpoint string
}

// Bucket issues signed upload URLs and streams objects from one bucket.
type Bucket struct {
	client *storage.Client
	name   string
	logger *zap.Logger
}

// New creates a bucket client.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Bucket, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	var opts []option.ClientOption
	switch {
	case cfg.Endpoint != "":
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	logger.Info("object storage initialized",
		zap.String("bucket", cfg.Bucket),
		zap.Bool("emulator", cfg.Endpoint != ""),
	)
	return &Bucket{client: client, name: cfg.Bucket, logger: logger}, nil
}

// SignedPutURL returns a V4 signed URL accepting one PUT of the object until ttl elapses.
func (b *Bucket) SignedPutURL(_ context.Context, object string, ttl time.Duration) (string, error) {
	u, err := b.client.Bucket(b.name).SignedURL(object, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "PUT",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign upload url for %s: %w", object, err)
	}
	return u, nil
}

// Open starts reading an object.
func (b *Bucket) Open(ctx context.Context, object string) (blob.Object, error) {
	r, err := b.client.Bucket(b.name).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return blob.Object{}, domain.ErrObjectNotFound
		}
		return blob.Object{}, fmt.Errorf("open object %s: %w", object, err)
	}

	ct := r.Attrs.ContentType
	if ct == "" || ct == "application/octet-stream" {
		if guessed := contentTypeForName(object); guessed != "" {
			ct = guessed
		}
	}
	return blob.Object{
		Name:        object,
		ContentType: ct,
		Size:        r.Attrs.Size,
		Body:        r,
	}, nil
}

// Ping checks that the bucket is reachable.
func (b *Bucket) Ping(ctx context.Context) error {
	if _, err := b.client.Bucket(b.name).Attrs(ctx); err != nil {
		return fmt.Errorf("bucket attrs: %w", err)
	}
	return nil
}

// Close releases the client.
func (b *Bucket) Close() error {
	if err := b.client.Close(); err != nil {
		return fmt.Errorf("close storage client: %w", err)
	}
	return nil
}

// contentTypeForName guesses a media type from the object extension.
func contentTypeForName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(s, ".mp4"), strings.HasSuffix(s, ".m4v"):
		return "video/mp4"
	case strings.HasSuffix(s, ".webm"):
		return "video/webm"
	case strings.HasSuffix(s, ".mov"):
		return "video/quicktime"
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".avif"):
		return "image/avif"
	default:
		return ""
	}
}
