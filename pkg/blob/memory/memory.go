// Package memory implements blob.Store entirely in memory.
//
// It mirrors the S3 gateway's observable behaviour — idempotent deletes,
// lexicographic listing with continuation tokens, checksum verification on
// reads — and is the fill-in backend for facade and cache tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
)

// object is a stored payload with its recorded metadata.
type object struct {
	data        []byte
	contentType string
	modified    time.Time
	sum         checksum.Checksum
}

// Store is an in-memory blob.Store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[string]*object

	// failPuts forces the next Put calls to fail with a transport error.
	failPuts int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{objects: make(map[string]*object)}
}

// Put stores a copy of data under key.
func (s *Store) Put(_ context.Context, key string, data []byte, contentType string) (blob.ObjectMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPuts > 0 {
		s.failPuts--
		return blob.ObjectMeta{}, &blob.TransportError{Op: "Put", Key: key, Err: fmt.Errorf("injected failure")}
	}

	obj := &object{
		data:        append([]byte(nil), data...),
		contentType: contentType,
		modified:    time.Now(),
		sum:         checksum.Sum(data),
	}
	s.objects[key] = obj
	return s.meta(key, obj), nil
}

// Get returns a copy of the stored bytes after verifying their checksum.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, blob.ErrNotFound)
	}

	if actual := checksum.Sum(obj.data); actual != obj.sum {
		return nil, &blob.IntegrityError{Key: key, Expected: obj.sum, Actual: actual}
	}
	return append([]byte(nil), obj.data...), nil
}

// Head returns the object's metadata.
func (s *Store) Head(_ context.Context, key string) (blob.ObjectMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return blob.ObjectMeta{}, fmt.Errorf("head %q: %w", key, blob.ErrNotFound)
	}
	return s.meta(key, obj), nil
}

// Presign returns a synthetic URL encoding the expiry instant. The ttl
// policy matches the S3 gateway: non-positive values are rejected.
func (s *Store) Presign(_ context.Context, key string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("presign ttl must be positive, got %s", ttl)
	}

	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("presign %q: %w", key, blob.ErrNotFound)
	}

	expires := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("memory://%s?expires=%d", key, expires), nil
}

// List returns up to maxKeys objects under prefix in lexicographic order.
// The continuation token is the numeric offset into the sorted key list.
func (s *Store) List(_ context.Context, prefix string, maxKeys int32, token string) (blob.ObjectPage, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	s.mu.RUnlock()
	sort.Strings(keys)

	offset := 0
	if token != "" {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n > len(keys) {
			return blob.ObjectPage{}, fmt.Errorf("invalid continuation token %q", token)
		}
		offset = n
	}
	keys = keys[offset:]

	if maxKeys < 0 {
		maxKeys = 0
	}
	var page blob.ObjectPage
	limit := int(maxKeys)
	if limit > len(keys) {
		limit = len(keys)
	}

	s.mu.RLock()
	for _, key := range keys[:limit] {
		if obj, ok := s.objects[key]; ok {
			page.Objects = append(page.Objects, s.meta(key, obj))
		}
	}
	s.mu.RUnlock()

	if limit < len(keys) {
		page.NextToken = strconv.Itoa(offset + limit)
	}
	return page, nil
}

// Delete removes key; absent keys are not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// DeleteMany removes all keys, ignoring absent ones.
func (s *Store) DeleteMany(_ context.Context, keys []string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.objects, key)
	}
	s.mu.Unlock()
	return nil
}

// Copy duplicates src to dst, preserving metadata.
func (s *Store) Copy(_ context.Context, src, dst string, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[src]
	if !ok {
		return fmt.Errorf("copy %q: %w", src, blob.ErrNotFound)
	}
	if _, exists := s.objects[dst]; exists && !overwrite {
		return fmt.Errorf("copy to %q: %w", dst, blob.ErrAlreadyExists)
	}

	s.objects[dst] = &object{
		data:        append([]byte(nil), obj.data...),
		contentType: obj.contentType,
		modified:    time.Now(),
		sum:         obj.sum,
	}
	return nil
}

// Corrupt flips a byte of the stored payload without updating the recorded
// checksum, so the next Get fails integrity verification. Test helper.
func (s *Store) Corrupt(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok || len(obj.data) == 0 {
		return false
	}
	obj.data[0] ^= 0xFF
	return true
}

// FailNextPuts makes the next n Put calls fail with a transport error.
// Test helper for exercising the facade's blob-before-metadata ordering.
func (s *Store) FailNextPuts(n int) {
	s.mu.Lock()
	s.failPuts = n
	s.mu.Unlock()
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *Store) meta(key string, obj *object) blob.ObjectMeta {
	return blob.ObjectMeta{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.modified,
		Checksum:     obj.sum,
	}
}
