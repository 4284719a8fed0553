// Package blob defines the object storage gateway used for large immutable
// payloads (sequence files, bulk exports).
//
// The gateway is a thin, integrity-checked abstraction over an S3-compatible
// backend. It never retries on its own: transient failures surface as
// *TransportError and the caller decides whether to retry. NotFound and
// integrity failures indicate a logical or data problem and must never be
// retried blindly.
package blob

import (
	"context"
	"time"

	"github.com/seqvault/seqvault/pkg/checksum"
)

// ObjectMeta describes a stored object without its body.
type ObjectMeta struct {
	// Key is the object's storage key.
	Key string

	// Size is the content length in bytes.
	Size int64

	// ContentType is the MIME type recorded at write time.
	ContentType string

	// LastModified is the backend's modification timestamp.
	LastModified time.Time

	// Checksum is the SHA-256 digest computed when the object was written.
	// Zero when the object predates checksum recording.
	Checksum checksum.Checksum
}

// ObjectPage is one page of a prefix listing.
type ObjectPage struct {
	// Objects are at most the requested number of entries, in lexicographic
	// key order.
	Objects []ObjectMeta

	// NextToken continues the listing when non-empty.
	NextToken string
}

// Store is the object storage gateway contract.
//
// Implementations must be safe for concurrent use. An object becomes
// retrievable only after Put returns successfully; there is no partial
// visibility.
type Store interface {
	// Put uploads data under key. The checksum is computed over data before
	// transmission and recorded with the object. The reported content length
	// is validated against len(data).
	Put(ctx context.Context, key string, data []byte, contentType string) (ObjectMeta, error)

	// Get downloads the full object body, recomputes its checksum and
	// compares it against the recorded one. On mismatch it returns an
	// *IntegrityError and the caller must not trust the bytes.
	Get(ctx context.Context, key string) ([]byte, error)

	// Head returns object metadata without transferring the body.
	Head(ctx context.Context, key string) (ObjectMeta, error)

	// Presign issues a time-bounded read-only URL for key, expiring at
	// now + ttl. A non-positive ttl is rejected at issuance.
	Presign(ctx context.Context, key string, ttl time.Duration) (string, error)

	// List returns up to maxKeys objects under prefix in lexicographic
	// order. Pass the previous page's NextToken to continue.
	List(ctx context.Context, prefix string, maxKeys int32, token string) (ObjectPage, error)

	// Delete removes key. Deleting a non-existent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteMany removes all keys in one backend call where supported.
	// Missing keys are ignored.
	DeleteMany(ctx context.Context, keys []string) error

	// Copy duplicates src to dst. When overwrite is false and dst exists it
	// fails with ErrAlreadyExists. Object metadata is preserved.
	Copy(ctx context.Context, src, dst string, overwrite bool) error
}
