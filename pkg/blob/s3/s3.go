// Package s3 implements the blob.Store gateway on Amazon S3 or any
// S3-compatible backend (MinIO, Ceph RGW, localstack).
//
// The object's SHA-256 digest is recorded in user metadata under the
// "sha256" key at write time and re-verified on every full-content read.
// The store performs no retries of its own; transient backend failures
// surface as *blob.TransportError for the caller to handle.
package s3

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
	"github.com/seqvault/seqvault/pkg/metrics"
)

// checksumMetadataKey is the S3 user-metadata key holding the hex SHA-256
// digest recorded at put time. S3 lowercases metadata keys on the wire.
const checksumMetadataKey = "sha256"

// deleteBatchSize is the S3 DeleteObjects per-request limit.
const deleteBatchSize = 1000

// Config contains the S3 gateway configuration.
type Config struct {
	// Endpoint overrides the AWS endpoint for S3-compatible services.
	Endpoint string

	// Region is the bucket region.
	Region string

	// Bucket is the bucket holding all SeqVault blobs.
	Bucket string

	// AccessKeyID and SecretAccessKey are static credentials. When both are
	// empty the AWS default credential chain is used.
	AccessKeyID     string
	SecretAccessKey string

	// ForcePathStyle selects path-style addressing instead of
	// virtual-hosted-style. Required by most S3-compatible services.
	ForcePathStyle bool

	// KeyPrefix is an optional prefix applied to every object key.
	KeyPrefix string

	// Metrics is an optional collector. Nil disables observation.
	Metrics metrics.BlobMetrics
}

// Store implements blob.Store on an S3-compatible backend.
//
// Safe for concurrent use; all state after construction is read-only.
type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	keyPrefix string
	metrics   metrics.BlobMetrics
}

// NewClient creates an S3 client from gateway configuration.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return client, nil
}

// New creates the S3 gateway and verifies bucket access. The bucket must
// already exist.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("region is required")
	}

	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("failed to access bucket %q: %w", cfg.Bucket, err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an already-configured S3 client. Used by tests and by
// callers that share one client across stores.
func NewWithClient(client *s3.Client, cfg Config) *Store {
	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
		metrics:   cfg.Metrics,
	}
}

// objectKey returns the full S3 key for a blob key.
func (s *Store) objectKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return s.keyPrefix + key
}

// blobKey strips the configured prefix from a full S3 key.
func (s *Store) blobKey(objectKey string) string {
	return strings.TrimPrefix(objectKey, s.keyPrefix)
}

// isNotFoundError reports whether err is an S3 absent-object error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound" || code == "404"
	}

	return false
}

// classify maps an S3 error to the gateway taxonomy: absent objects become
// blob.ErrNotFound, everything else is a transport failure.
func classify(op, key string, err error) error {
	if err == nil {
		return nil
	}
	if isNotFoundError(err) {
		return fmt.Errorf("%s %q: %w", op, key, blob.ErrNotFound)
	}
	return &blob.TransportError{Op: op, Key: key, Err: err}
}

// recordedChecksum extracts the put-time digest from object user metadata.
// Returns the zero checksum when absent or unparseable.
func recordedChecksum(md map[string]string) checksum.Checksum {
	hexSum, ok := md[checksumMetadataKey]
	if !ok {
		return checksum.Checksum{}
	}
	sum, err := checksum.Parse(hexSum)
	if err != nil {
		return checksum.Checksum{}
	}
	return sum
}
