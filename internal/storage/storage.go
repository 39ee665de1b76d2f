package storage

import (
	"context"
	"io"
)

// BlobStore holds photo blobs addressed by opaque keys. The donation core
// never inspects blob content; it only passes keys around.
type BlobStore interface {
	// Save writes the blob for a key, replacing any previous content.
	Save(ctx context.Context, key string, reader io.Reader) error

	// Open returns a reader for the blob. domain.ErrNotFound semantics are the
	// caller's concern; a missing blob surfaces as a plain error here.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the blob is present and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}
