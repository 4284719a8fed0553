package checksum

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed SHA-256 of the empty input.
const emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestSumEmptyInput(t *testing.T) {
	sum := Sum(nil)
	assert.Equal(t, emptyDigest, sum.String())

	// nil and empty slice hash identically
	assert.Equal(t, sum, Sum([]byte{}))
}

func TestSumDeterministic(t *testing.T) {
	data := []byte("ACGTACGTACGT")
	assert.Equal(t, Sum(data), Sum(data))
}

func TestVerifyRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("ACGT"),
		bytes.Repeat([]byte{0xAB}, 1<<20),
	}
	for _, data := range inputs {
		assert.True(t, Verify(data, Sum(data)))
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	sum := Sum([]byte("ACGT"))
	assert.False(t, Verify([]byte("ACGA"), sum))
	assert.False(t, Verify([]byte("ACGTT"), sum))
	assert.False(t, Verify(nil, sum))
}

func TestDistinctInputsDistinctDigests(t *testing.T) {
	seen := make(map[Checksum]string)
	inputs := []string{"", "a", "b", "ab", "ba", "ACGT", "acgt"}
	for _, in := range inputs {
		sum := Sum([]byte(in))
		prev, dup := seen[sum]
		require.False(t, dup, "collision between %q and %q", prev, in)
		seen[sum] = in
	}
}

func TestSumReader(t *testing.T) {
	data := "ACGTACGTACGTACGT"
	sum, n, err := SumReader(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum([]byte(data)), sum)
}

func TestParse(t *testing.T) {
	sum := Sum([]byte("ACGT"))

	parsed, err := Parse(sum.String())
	require.NoError(t, err)
	assert.Equal(t, sum, parsed)

	_, err = Parse("not-hex")
	assert.Error(t, err)

	_, err = Parse("abcd")
	assert.Error(t, err, "truncated digest must be rejected")
}

func TestIsZero(t *testing.T) {
	var zero Checksum
	assert.True(t, zero.IsZero())
	assert.False(t, Sum(nil).IsZero(), "empty-input digest is not the zero value")
}
