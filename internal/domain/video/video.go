// Package video describes entries of the sample streaming catalog.
package video

// Type distinguishes movies from series.
type Type string

const (
	// Movie is a feature film.
	Movie Type = "movie"
	// TV is a series.
	TV Type = "tv"
)

// Video is a catalog entry.
type Video struct {
	ID           int
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Duration     string
	Views        string
	Category     string
	Rating       float64
	Year         int
	Type         Type
}
