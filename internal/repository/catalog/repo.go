// Package catalog serves the read-only sample video catalog from memory.
package catalog

import (
	"context"
	"strings"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/video"
)

// Repo holds the seeded videos in id order.
type Repo struct {
	videos []video.Video
}

// New creates a repository seeded with the sample catalog.
func New() *Repo {
	videos := make([]video.Video, len(seed))
	for i, v := range seed {
		v.ID = i + 1
		videos[i] = v
	}
	return &Repo{videos: videos}
}

// List returns all videos.
func (r *Repo) List(_ context.Context) ([]video.Video, error) {
	out := make([]video.Video, len(r.videos))
	copy(out, r.videos)
	return out, nil
}

// ListByCategory returns videos whose category matches case-insensitively.
func (r *Repo) ListByCategory(_ context.Context, category string) ([]video.Video, error) {
	out := make([]video.Video, 0)
	for _, v := range r.videos {
		if strings.EqualFold(v.Category, category) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Get returns a video by id.
func (r *Repo) Get(_ context.Context, id int) (video.Video, error) {
	if id < 1 || id > len(r.videos) {
		return video.Video{}, domain.ErrVideoNotFound
	}
	return r.videos[id-1], nil
}
