package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
)

// Put uploads data under key, recording its SHA-256 digest in object
// metadata before transmission. After the upload it validates the backend's
// reported content length against len(data); a disagreement means the write
// did not land intact and is surfaced as a transport failure.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (meta blob.ObjectMeta, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Put", time.Since(start), err)
		}
	}()

	sum := checksum.Sum(data)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			checksumMetadataKey: sum.String(),
		},
	})
	if err != nil {
		return blob.ObjectMeta{}, classify("Put", key, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveTransfer("upload", len(data))
	}

	// Re-fetch metadata to confirm the object landed with the expected size.
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return blob.ObjectMeta{}, classify("Put", key, err)
	}
	if head.ContentLength == nil || *head.ContentLength != int64(len(data)) {
		got := int64(-1)
		if head.ContentLength != nil {
			got = *head.ContentLength
		}
		err = &blob.TransportError{
			Op:  "Put",
			Key: key,
			Err: fmt.Errorf("content length mismatch after upload: sent %d, stored %d", len(data), got),
		}
		return blob.ObjectMeta{}, err
	}

	meta = blob.ObjectMeta{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		Checksum:    sum,
	}
	if head.LastModified != nil {
		meta.LastModified = *head.LastModified
	}
	return meta, nil
}

// Copy duplicates src to dst within the bucket, preserving metadata.
// When overwrite is false and dst already exists the copy fails with
// blob.ErrAlreadyExists.
func (s *Store) Copy(ctx context.Context, src, dst string, overwrite bool) (err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Copy", time.Since(start), err)
		}
	}()

	if !overwrite {
		_, headErr := s.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.objectKey(dst)),
		})
		switch {
		case headErr == nil:
			err = fmt.Errorf("copy to %q: %w", dst, blob.ErrAlreadyExists)
			return err
		case !isNotFoundError(headErr):
			err = classify("Copy", dst, headErr)
			return err
		}
	}

	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:            aws.String(s.bucket),
		Key:               aws.String(s.objectKey(dst)),
		CopySource:        aws.String(fmt.Sprintf("%s/%s", s.bucket, s.objectKey(src))),
		MetadataDirective: types.MetadataDirectiveCopy,
	})
	if err != nil {
		err = classify("Copy", src, err)
		return err
	}
	return nil
}
