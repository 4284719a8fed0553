package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presign issues a time-bounded read-only URL for key. The URL requires no
// further authentication within its validity window. A non-positive ttl is
// rejected at issuance rather than producing an immediately-expired URL.
func (s *Store) Presign(ctx context.Context, key string, ttl time.Duration) (url string, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Presign", time.Since(start), err)
		}
	}()

	if ttl <= 0 {
		err = fmt.Errorf("presign ttl must be positive, got %s", ttl)
		return "", err
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		err = classify("Presign", key, err)
		return "", err
	}

	return req.URL, nil
}
