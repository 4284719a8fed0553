package blob

import (
	"errors"
	"fmt"

	"github.com/seqvault/seqvault/pkg/checksum"
)

// Sentinel errors for the object storage gateway.
var (
	// ErrNotFound indicates the requested object does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrAlreadyExists indicates a copy destination already exists and
	// overwrite was not requested.
	ErrAlreadyExists = errors.New("object already exists")
)

// IntegrityError indicates a checksum mismatch on a full-content read.
// It is fatal for the requested operation: the bytes must not be used.
type IntegrityError struct {
	Key      string
	Expected checksum.Checksum
	Actual   checksum.Checksum
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("checksum mismatch for object %q: expected %s, got %s",
		e.Key, e.Expected, e.Actual)
}

// TransportError wraps a network or backend failure. These are the only
// gateway errors a caller may reasonably retry.
type TransportError struct {
	Op  string
	Key string
	Err error
}

func (e *TransportError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("blob %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("blob %s failed for %q: %v", e.Op, e.Key, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsIntegrity reports whether err is a checksum integrity failure.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// IsTransport reports whether err is a retryable transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
