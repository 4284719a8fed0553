package logger

import "log/slog"

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so aggregated logs
// stay queryable.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Request & Operation
	// ========================================================================
	KeyOperation = "operation"  // Operation name: attach_blob, publish, search, etc.
	KeyRequestID = "request_id" // Request identifier for correlation
	KeyClientIP  = "client_ip"  // Client IP address

	// ========================================================================
	// Registry Entities
	// ========================================================================
	KeyOrganization = "organization" // Organization slug
	KeyEntry        = "entry"        // Registry entry slug
	KeyEntryType    = "entry_type"   // data_source or tool
	KeyVersion      = "version"      // Version ID
	KeyLabel        = "label"        // Version label
	KeyStatus       = "status"       // Version lifecycle status

	// ========================================================================
	// Object Storage
	// ========================================================================
	KeyKey         = "key"          // Object key in blob storage
	KeyBucket      = "bucket"       // Bucket name
	KeyRegion      = "region"       // Cloud region
	KeyPrefix      = "prefix"       // Listing prefix
	KeySize        = "size"         // Payload size in bytes
	KeyChecksum    = "checksum"     // Content checksum (hex)
	KeyContentType = "content_type" // MIME content type

	// ========================================================================
	// Cache Layer
	// ========================================================================
	KeyCacheHit  = "cache_hit"  // Cache hit indicator
	KeyCacheTier = "cache_tier" // Tier that served the hit: memory, disk
	KeyCacheDir  = "cache_dir"  // Disk cache root directory
	KeyEntries   = "entries"    // Number of entries touched
	KeyEvicted   = "evicted"    // Number of entries evicted

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeySource     = "source"      // Data source: cache, blob_store, registry
	KeyAttempt    = "attempt"     // Retry attempt number
)

// ============================================================================
// Field constructors for type safety
// ============================================================================

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// Operation returns a slog.Attr for the operation name
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// RequestID returns a slog.Attr for the request identifier
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// ClientIP returns a slog.Attr for the client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// Organization returns a slog.Attr for an organization slug
func Organization(slug string) slog.Attr {
	return slog.String(KeyOrganization, slug)
}

// Entry returns a slog.Attr for a registry entry slug
func Entry(slug string) slog.Attr {
	return slog.String(KeyEntry, slug)
}

// EntryType returns a slog.Attr for the entry type
func EntryType(t string) slog.Attr {
	return slog.String(KeyEntryType, t)
}

// Version returns a slog.Attr for a version ID
func Version(id string) slog.Attr {
	return slog.String(KeyVersion, id)
}

// Label returns a slog.Attr for a version label
func Label(label string) slog.Attr {
	return slog.String(KeyLabel, label)
}

// Status returns a slog.Attr for a version lifecycle status
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Key returns a slog.Attr for an object key
func Key(k string) slog.Attr {
	return slog.String(KeyKey, k)
}

// Bucket returns a slog.Attr for a bucket name
func Bucket(name string) slog.Attr {
	return slog.String(KeyBucket, name)
}

// Region returns a slog.Attr for a cloud region
func Region(r string) slog.Attr {
	return slog.String(KeyRegion, r)
}

// Prefix returns a slog.Attr for a listing prefix
func Prefix(p string) slog.Attr {
	return slog.String(KeyPrefix, p)
}

// Size returns a slog.Attr for a payload size in bytes
func Size(n int64) slog.Attr {
	return slog.Int64(KeySize, n)
}

// Checksum returns a slog.Attr for a content checksum
func Checksum(sum string) slog.Attr {
	return slog.String(KeyChecksum, sum)
}

// ContentType returns a slog.Attr for a MIME content type
func ContentType(ct string) slog.Attr {
	return slog.String(KeyContentType, ct)
}

// CacheHit returns a slog.Attr for a cache hit indicator
func CacheHit(hit bool) slog.Attr {
	return slog.Bool(KeyCacheHit, hit)
}

// CacheTier returns a slog.Attr for the tier that served a hit
func CacheTier(tier string) slog.Attr {
	return slog.String(KeyCacheTier, tier)
}

// CacheDir returns a slog.Attr for the disk cache root
func CacheDir(dir string) slog.Attr {
	return slog.String(KeyCacheDir, dir)
}

// Entries returns a slog.Attr for a number of entries
func Entries(n int) slog.Attr {
	return slog.Int(KeyEntries, n)
}

// Evicted returns a slog.Attr for a number of evicted entries
func Evicted(n int) slog.Attr {
	return slog.Int(KeyEvicted, n)
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Source returns a slog.Attr for a data source
func Source(src string) slog.Attr {
	return slog.String(KeySource, src)
}

// Attempt returns a slog.Attr for a retry attempt number
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}
