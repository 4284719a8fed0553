package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/seqvault/seqvault/pkg/blob"
)

// List returns up to maxKeys objects under prefix in lexicographic key
// order (S3's native ordering). The returned NextToken continues the
// listing; maxKeys is a hard cap per call.
//
// Listing entries carry key, size and last-modified only: S3 does not
// return content type or user metadata from ListObjectsV2, so the checksum
// field is zero. Use Head for a full ObjectMeta.
func (s *Store) List(ctx context.Context, prefix string, maxKeys int32, token string) (page blob.ObjectPage, err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("List", time.Since(start), err)
		}
	}()

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(s.objectKey(prefix)),
		MaxKeys: aws.Int32(maxKeys),
	}
	if token != "" {
		input.ContinuationToken = aws.String(token)
	}

	out, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return blob.ObjectPage{}, classify("List", prefix, err)
	}

	page.Objects = make([]blob.ObjectMeta, 0, len(out.Contents))
	for _, obj := range out.Contents {
		if obj.Key == nil {
			continue
		}
		meta := blob.ObjectMeta{Key: s.blobKey(*obj.Key)}
		if obj.Size != nil {
			meta.Size = *obj.Size
		}
		if obj.LastModified != nil {
			meta.LastModified = *obj.LastModified
		}
		page.Objects = append(page.Objects, meta)
	}

	if out.NextContinuationToken != nil {
		page.NextToken = *out.NextContinuationToken
	}
	return page, nil
}
