package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptService_RoundTrip(t *testing.T) {
	svc := NewBcryptService(bcrypt.MinCost)

	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, svc.Compare(hash, "s3cret"))
	assert.ErrorIs(t, svc.Compare(hash, "wrong"), ErrMismatch)
}

func TestBcryptService_DistinctHashes(t *testing.T) {
	// Salted: hashing the same password twice yields different hashes.
	svc := NewBcryptService(bcrypt.MinCost)

	h1, err := svc.Hash("s3cret")
	require.NoError(t, err)
	h2, err := svc.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestPlainService(t *testing.T) {
	svc := PlainService{}

	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", hash)
	assert.NoError(t, svc.Compare(hash, "s3cret"))
	assert.ErrorIs(t, svc.Compare(hash, "wrong"), ErrMismatch)
}
