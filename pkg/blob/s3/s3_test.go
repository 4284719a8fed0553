package s3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqvault/seqvault/pkg/blob"
	"github.com/seqvault/seqvault/pkg/checksum"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "NoSuchKey type", err: &types.NoSuchKey{}, want: true},
		{name: "NotFound type", err: &types.NotFound{}, want: true},
		{name: "NoSuchKey code", err: &smithy.GenericAPIError{Code: "NoSuchKey"}, want: true},
		{name: "NotFound code", err: &smithy.GenericAPIError{Code: "NotFound"}, want: true},
		{name: "bare 404 code", err: &smithy.GenericAPIError{Code: "404"}, want: true},
		{name: "wrapped NoSuchKey", err: fmt.Errorf("op failed: %w", &types.NoSuchKey{}), want: true},
		{name: "access denied code", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: false},
		{name: "plain error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotFoundError(tt.err))
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify("Get", "some/key", nil))
}

func TestClassifyAbsentObject(t *testing.T) {
	err := classify("Get", "orgs/ena/v1/content", &types.NoSuchKey{})
	assert.ErrorIs(t, err, blob.ErrNotFound)
	assert.False(t, blob.IsTransport(err))
	assert.Contains(t, err.Error(), "orgs/ena/v1/content")
}

func TestClassifyTransportFailure(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := classify("Put", "orgs/ena/v1/content", cause)

	require.True(t, blob.IsTransport(err))
	assert.False(t, errors.Is(err, blob.ErrNotFound))

	var te *blob.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Put", te.Op)
	assert.Equal(t, "orgs/ena/v1/content", te.Key)
	assert.ErrorIs(t, err, cause)
}

func TestRecordedChecksum(t *testing.T) {
	sum := checksum.Sum([]byte(">seq1\nACGT\n"))

	t.Run("present", func(t *testing.T) {
		got := recordedChecksum(map[string]string{checksumMetadataKey: sum.String()})
		assert.Equal(t, sum, got)
	})

	t.Run("absent", func(t *testing.T) {
		got := recordedChecksum(map[string]string{"content-kind": "fasta"})
		assert.True(t, got.IsZero())
	})

	t.Run("unparseable", func(t *testing.T) {
		got := recordedChecksum(map[string]string{checksumMetadataKey: "not-hex"})
		assert.True(t, got.IsZero())
	})

	t.Run("truncated", func(t *testing.T) {
		got := recordedChecksum(map[string]string{checksumMetadataKey: sum.String()[:10]})
		assert.True(t, got.IsZero())
	})
}

func TestObjectKeyPrefix(t *testing.T) {
	plain := &Store{}
	assert.Equal(t, "a/b/content", plain.objectKey("a/b/content"))
	assert.Equal(t, "a/b/content", plain.blobKey("a/b/content"))

	prefixed := &Store{keyPrefix: "seqvault/"}
	full := prefixed.objectKey("a/b/content")
	assert.Equal(t, "seqvault/a/b/content", full)
	assert.Equal(t, "a/b/content", prefixed.blobKey(full))
}
