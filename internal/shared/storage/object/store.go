package object

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned for keys that escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Object describes a stored upload.
type Object struct {
	Key         string
	SizeBytes   int64
	ContentType string
}

// ObjectStore defines the contract for keeping uploaded résumé files.
type ObjectStore interface {
	Put(ctx context.Context, owner string, fileName string, r io.Reader) (Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
