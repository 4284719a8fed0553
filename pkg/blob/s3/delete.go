package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Delete removes key. Deleting an absent key succeeds; S3's DeleteObject is
// idempotent and so is this method.
func (s *Store) Delete(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("Delete", time.Since(start), err)
		}
	}()

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFoundError(err) {
			err = nil
			return nil
		}
		err = classify("Delete", key, err)
		return err
	}
	return nil
}

// DeleteMany removes keys in batches of up to 1000 per DeleteObjects call.
// Missing keys are ignored.
func (s *Store) DeleteMany(ctx context.Context, keys []string) (err error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveOperation("DeleteMany", time.Since(start), err)
		}
	}()

	for len(keys) > 0 {
		batch := keys
		if len(batch) > deleteBatchSize {
			batch = batch[:deleteBatchSize]
		}
		keys = keys[len(batch):]

		objects := make([]types.ObjectIdentifier, len(batch))
		for i, key := range batch {
			objects[i] = types.ObjectIdentifier{Key: aws.String(s.objectKey(key))}
		}

		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{
				Objects: objects,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			err = classify("DeleteMany", "", err)
			return err
		}
	}
	return nil
}
