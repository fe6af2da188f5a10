package project

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
)

// projectRow is the stored JSON shape of a project. Created-at is unix millis.
type projectRow struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	VideoURL    string   `json:"video_url,omitempty"`
	OwnerID     string   `json:"owner_id"`
	CreatedAt   int64    `json:"created_at,omitempty"`
	Visibility  string   `json:"visibility"`
}

func projectToJSON(p *domproject.Project) ([]byte, error) {
	f := p.Fields()
	row := projectRow{
		ID:          p.ID(),
		Title:       f.Title,
		Genre:       f.Genre,
		Tags:        f.Tags,
		Description: f.Description,
		PosterURL:   f.PosterURL,
		VideoURL:    f.VideoURL,
		OwnerID:     f.OwnerID,
		Visibility:  string(f.Visibility),
	}
	if !f.CreatedAt.IsZero() {
		row.CreatedAt = f.CreatedAt.UnixMilli()
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	return data, nil
}

func projectFromJSON(data []byte) (domproject.Project, error) {
	var row projectRow
	if err := json.Unmarshal(data, &row); err != nil {
		return domproject.Project{}, fmt.Errorf("unmarshal project: %w", err)
	}
	var createdAt time.Time
	if row.CreatedAt > 0 {
		createdAt = time.UnixMilli(row.CreatedAt).UTC()
	}
	return domproject.Reconstruct(row.ID, domproject.Fields{
		Title:       row.Title,
		Genre:       row.Genre,
		Tags:        row.Tags,
		Description: row.Description,
		PosterURL:   row.PosterURL,
		VideoURL:    row.VideoURL,
		OwnerID:     row.OwnerID,
		CreatedAt:   createdAt,
		Visibility:  domproject.Visibility(row.Visibility),
	}), nil
}
