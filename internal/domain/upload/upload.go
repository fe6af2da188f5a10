// Package upload describes projects recorded by the fallback upload store.
package upload

import "time"

// Source marks records created through object storage uploads.
const Source = "object_storage"

// Record is a project saved straight from an object storage upload.
type Record struct {
	ID          string
	Title       string
	Description string
	UploadedBy  string
	VideoURL    string
	CreatedAt   time.Time
	Visibility  string
	Tags        []string
	Cast        []string
	Crew        []string
	Source      string
}

// Draft holds the caller-supplied part of a record.
type Draft struct {
	VideoURL    string
	Title       string
	Description string
	UserID      string
}
