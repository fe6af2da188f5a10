package profile

import (
	"context"

	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
)

// Repository defines the storage contract for profiles.
type Repository interface {
	Get(ctx context.Context, id string) (domprofile.Profile, error)
	Save(ctx context.Context, p domprofile.Profile) error
}
