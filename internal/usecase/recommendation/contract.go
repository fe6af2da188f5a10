package recommendation

import (
	"context"
	"time"

	"github.com/kailas-cloud/soartv/internal/domain/profile"
	"github.com/kailas-cloud/soartv/internal/domain/project"
)

// ProfileReader is the read side of the profile store.
type ProfileReader interface {
	Get(ctx context.Context, id string) (profile.Profile, error)
	List(ctx context.Context) ([]profile.Profile, error)
}

// ProjectReader is the read side of the project store. Both listings
// return public projects only.
type ProjectReader interface {
	ListRecent(ctx context.Context, limit int) ([]project.Project, error)
	ListByTags(ctx context.Context, tags []string) ([]project.Project, error)
}

// Clock returns the current time.
type Clock func() time.Time
