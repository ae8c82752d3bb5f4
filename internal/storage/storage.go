package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrObjectNotFound    = errors.New("storage: object not found")
	ErrObjectExists      = errors.New("storage: object already exists")
	ErrContainerNotFound = errors.New("storage: container not found")
)

// OverwritePolicy decides what Upload does when an object with the same
// name already exists.
type OverwritePolicy int

const (
	// OverwriteExisting silently replaces the previous object.
	OverwriteExisting OverwritePolicy = iota
	// RejectExisting fails the upload with ErrObjectExists.
	RejectExisting
)

func (p OverwritePolicy) String() string {
	if p == RejectExisting {
		return "reject"
	}
	return "overwrite"
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type DocumentStore interface {
	// Upload stores content under name and returns the URL it can be
	// retrieved from. sizeHint may be -1 when unknown.
	Upload(ctx context.Context, content io.Reader, sizeHint int64, name string) (string, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Size returns the object size in bytes. It returns 0 and
	// ErrObjectNotFound for a missing object, and 0 with the backend error
	// otherwise.
	Size(ctx context.Context, name string) (int64, error)
}

// DocumentName derives the object name for an uploaded file:
// "<fileType>-<originalName>".
func DocumentName(fileType, originalName string) string {
	return fileType + "-" + originalName
}
