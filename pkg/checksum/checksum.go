// Package checksum computes and verifies content digests for blob payloads.
//
// SHA-256 is the single digest algorithm used across SeqVault. The digest is
// the authoritative integrity proof for every blob: it is computed at write
// time, recorded next to the object, and re-verified on every full read.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Size is the digest length in bytes.
const Size = sha256.Size

// Checksum is a SHA-256 digest of a byte payload.
type Checksum [Size]byte

// Sum computes the checksum of data. The zero-length input is valid and
// yields the fixed SHA-256 empty digest
// (e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855).
func Sum(data []byte) Checksum {
	return sha256.Sum256(data)
}

// SumReader computes the checksum of everything readable from r.
func SumReader(r io.Reader) (Checksum, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return Checksum{}, n, fmt.Errorf("failed to hash stream: %w", err)
	}
	var sum Checksum
	copy(sum[:], h.Sum(nil))
	return sum, n, nil
}

// Verify reports whether data hashes to expected. The comparison is
// exact byte equality over the full digest, never a prefix check.
func Verify(data []byte, expected Checksum) bool {
	return Sum(data) == expected
}

// String returns the lowercase hex encoding of the checksum.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// IsZero reports whether the checksum is the zero value (unset, not the
// digest of the empty payload).
func (c Checksum) IsZero() bool {
	return c == Checksum{}
}

// Parse decodes a lowercase or uppercase hex digest string.
func Parse(s string) (Checksum, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Checksum{}, fmt.Errorf("invalid checksum encoding: %w", err)
	}
	if len(raw) != Size {
		return Checksum{}, fmt.Errorf("invalid checksum length: got %d bytes, want %d", len(raw), Size)
	}
	var sum Checksum
	copy(sum[:], raw)
	return sum, nil
}
