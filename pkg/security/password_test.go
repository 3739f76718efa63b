package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher(10)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong-pass"))
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	h := NewBcryptHasher(10)
	_, err := h.Hash("")
	assert.Error(t, err)
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)
	hash, err := h.Hash("whatever")
	assert.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "whatever"))
}
