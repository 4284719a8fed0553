package s3

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
)

// Get downloads the full object body and verifies it against the digest
// recorded at put time. A mismatch returns *blob.IntegrityError; the caller
// must discard the bytes. Objects written without a recorded digest are
// returned unverified.
func (s *Store) Get(ctx context.Context, key string) (data []byte, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Get", time.Since(start), err)
		}
	}()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return nil, classify("Get", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		err = &blob.TransportError{Op: "Get", Key: key, Err: err}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveTransfer("download", len(data))
	}

	expected := recordedChecksum(out.Metadata)
	if !expected.IsZero() {
		if actual := checksum.Sum(data); actual != expected {
			err = &blob.IntegrityError{Key: key, Expected: expected, Actual: actual}
			return nil, err
		}
	}

	return data, nil
}

// Head returns object metadata without transferring the body.
func (s *Store) Head(ctx context.Context, key string) (meta blob.ObjectMeta, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Head", time.Since(start), err)
		}
	}()

	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return blob.ObjectMeta{}, classify("Head", key, err)
	}

	meta = blob.ObjectMeta{
		Key:      key,
		Checksum: recordedChecksum(out.Metadata),
	}
	if out.ContentLength != nil {
		meta.Size = *out.ContentLength
	}
	if out.ContentType != nil {
		meta.ContentType = *out.ContentType
	}
	if out.LastModified != nil {
		meta.LastModified = *out.LastModified
	}
	return meta, nil
}
