// Package filestore keeps uploaded project records per user in a JSON file.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/domain/upload"
)

// recordRow is the on-disk shape, keyed by user id at the top level.
type recordRow struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UploadedBy  string   `json:"uploadedBy"`
	VideoURL    string   `json:"videoURL"`
	CreatedAt   string   `json:"createdAt"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags"`
	Cast        []string `json:"cast"`
	Crew        []string `json:"crew"`
	Source      string   `json:"source"`
}

// Store is a mutex-guarded map of user id to records mirrored to one file.
type Store struct {
	path   string
	logger *zap.Logger

	mu      sync.RWMutex
	records map[string][]upload.Record
}

// Open loads the file at path. A missing file starts empty; an unreadable
// or corrupt one starts empty with a warning.
func Open(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, logger: logger, records: map[string][]upload.Record{}}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s
	case err != nil:
		logger.Warn("fallback store unreadable, starting empty", zap.String("path", path), zap.Error(err))
		return s
	}

	var rows map[string][]recordRow
	if err := json.Unmarshal(data, &rows); err != nil {
		logger.Warn("fallback store corrupt, starting empty", zap.String("path", path), zap.Error(err))
		return s
	}
	for userID, list := range rows {
		for _, row := range list {
			s.records[userID] = append(s.records[userID], fromRow(row))
		}
	}
	logger.Info("fallback store loaded", zap.String("path", path), zap.Int("users", len(s.records)))
	return s
}

// Append adds a record for its uploader and persists the whole store.
// The in-memory state is rolled back when the write fails.
func (s *Store) Append(_ context.Context, rec upload.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.records[rec.UploadedBy]
	s.records[rec.UploadedBy] = append(append([]upload.Record(nil), prev...), rec)

	if err := s.flush(); err != nil {
		if prev == nil {
			delete(s.records, rec.UploadedBy)
		} else {
			s.records[rec.UploadedBy] = prev
		}
		return err
	}
	return nil
}

// ListByUser returns a copy of the user's records, or an empty slice.
func (s *Store) ListByUser(_ context.Context, userID string) ([]upload.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.records[userID]
	out := make([]upload.Record, len(list))
	copy(out, list)
	return out, nil
}

// flush writes the store through a temp file and rename. Caller holds mu.
func (s *Store) flush() error {
	rows := make(map[string][]recordRow, len(s.records))
	for userID, list := range s.records {
		out := make([]recordRow, len(list))
		for i, rec := range list {
			out[i] = toRow(rec)
		}
		rows[userID] = out
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fallback store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create fallback store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".projects-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename fallback store: %w", err)
	}
	return nil
}

func toRow(rec upload.Record) recordRow {
	return recordRow{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		UploadedBy:  rec.UploadedBy,
		VideoURL:    rec.VideoURL,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		Visibility:  rec.Visibility,
		Tags:        nonNil(rec.Tags),
		Cast:        nonNil(rec.Cast),
		Crew:        nonNil(rec.Crew),
		Source:      rec.Source,
	}
}

func fromRow(row recordRow) upload.Record {
	createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	return upload.Record{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		UploadedBy:  row.UploadedBy,
		VideoURL:    row.VideoURL,
		CreatedAt:   createdAt,
		Visibility:  row.Visibility,
		Tags:        nonNil(row.Tags),
		Cast:        nonNil(row.Cast),
		Crew:        nonNil(row.Crew),
		Source:      row.Source,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
