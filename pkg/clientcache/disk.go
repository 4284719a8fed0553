package clientcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/seqvault/seqvault/internal/logger"
	"github.com/seqvault/seqvault/pkg/metrics"
)

// SchemaVersion tags every disk record. Records written by a client with a
// different schema are treated as absent and never deserialized.
const SchemaVersion = 1

const recordSuffix = ".json"

// record is the on-disk cache entry format.
type record struct {
	SchemaVersion int       `json:"schema_version"`
	StoredAt      time.Time `json:"stored_at"`
	Payload       []byte    `json:"payload"`
}

// diskTier is a file-per-key cache under a root directory. Writes go to a
// temp file first and are renamed into place, so a reader never sees a
// half-written record. Unreadable records are a miss, never an error.
type diskTier struct {
	root    string
	ttl     time.Duration
	metrics metrics.CacheMetrics

	sweepStop chan struct{}
	sweepDone chan struct{}
}

func newDiskTier(root string, ttl time.Duration, m metrics.CacheMetrics) (*diskTier, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &diskTier{
		root:    root,
		ttl:     ttl,
		metrics: m,
	}, nil
}

func (d *diskTier) path(key string) string {
	return filepath.Join(d.root, key+recordSuffix)
}

// get returns the payload for key, or false on any kind of miss: absent
// file, corrupt record, schema mismatch, or expired TTL. Expired and
// unreadable records are evicted on the spot.
func (d *diskTier) get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt record: downgrade to a miss and drop the file.
		logger.Debug("dropping corrupt cache record",
			logger.CacheDir(d.root),
			logger.Err(err))
		d.evict(key)
		return nil, false
	}

	if rec.SchemaVersion != SchemaVersion {
		d.evict(key)
		return nil, false
	}
	if d.expired(rec.StoredAt) {
		d.evict(key)
		return nil, false
	}
	return rec.Payload, true
}

// put writes the payload atomically: temp file in the same directory, then
// rename over the final path.
func (d *diskTier) put(key string, payload []byte) error {
	rec := record{
		SchemaVersion: SchemaVersion,
		StoredAt:      time.Now(),
		Payload:       payload,
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode cache record: %w", err)
	}

	tmp, err := os.CreateTemp(d.root, "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close cache record: %w", err)
	}

	if err := os.Rename(tmpName, d.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to commit cache record: %w", err)
	}
	return nil
}

func (d *diskTier) evict(key string) {
	if err := os.Remove(d.path(key)); err == nil && d.metrics != nil {
		d.metrics.Eviction("disk")
	}
}

func (d *diskTier) expired(storedAt time.Time) bool {
	return d.ttl > 0 && time.Since(storedAt) > d.ttl
}

// clear removes every record under the root.
func (d *diskTier) clear() error {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordSuffix) {
			continue
		}
		_ = os.Remove(filepath.Join(d.root, entry.Name()))
	}
	return nil
}

// sweep walks the root once and evicts expired, corrupt, and
// stale-schema records.
func (d *diskTier) sweep() {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return
	}

	evicted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordSuffix) {
			continue
		}
		path := filepath.Join(d.root, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil ||
			rec.SchemaVersion != SchemaVersion ||
			d.expired(rec.StoredAt) {
			if os.Remove(path) == nil {
				evicted++
				if d.metrics != nil {
					d.metrics.Eviction("disk")
				}
			}
		}
	}

	if evicted > 0 {
		logger.Debug("cache sweep evicted records",
			logger.CacheDir(d.root),
			logger.Evicted(evicted))
	}
}

// startSweeper runs sweep on the given interval until stopSweeper.
func (d *diskTier) startSweeper(interval time.Duration) {
	d.sweepStop = make(chan struct{})
	d.sweepDone = make(chan struct{})

	go func() {
		defer close(d.sweepDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.sweep()
			case <-d.sweepStop:
				return
			}
		}
	}()
}

func (d *diskTier) stopSweeper() {
	if d.sweepStop != nil {
		close(d.sweepStop)
		<-d.sweepDone
		d.sweepStop = nil
	}
}
