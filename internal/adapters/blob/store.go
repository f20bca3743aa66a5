package blob

import (
	"context"
	"io"

	"ratedesk/internal/domain/document"
)

// Store is the port for the document blob namespace. Pathnames are
// hierarchical strings over a flat keyspace; folder semantics are a
// convention layered on top (see the document domain package).
type Store interface {
	// Put writes the object at pathname, replacing any existing object.
	Put(ctx context.Context, pathname string, body io.Reader, contentType string) (document.Object, error)
	// Exists reports whether an object with exactly this pathname exists.
	Exists(ctx context.Context, pathname string) (bool, error)
	// ListPrefix returns every object whose pathname has the given prefix.
	// Implementations must page through the full result set themselves.
	ListPrefix(ctx context.Context, prefix string) ([]document.Object, error)
	// Delete removes the object at pathname. Deleting an absent object is
	// not an error.
	Delete(ctx context.Context, pathname string) error
	// Copy duplicates the object at src to dst.
	Copy(ctx context.Context, src, dst string) error
}
