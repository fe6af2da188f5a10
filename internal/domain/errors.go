package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrProfileNotFound signals a missing user profile.
	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrVideoNotFound signals a missing catalog video.
	ErrVideoNotFound = fmt.Errorf("video %w", ErrNotFound)
	// ErrObjectNotFound signals a missing object in blob storage.
	ErrObjectNotFound = fmt.Errorf("object %w", ErrNotFound)

	// ErrInvalidInput signals a request that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorageDisabled signals that object storage is not configured.
	ErrStorageDisabled = errors.New("object storage disabled")
)
