package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "pw1", digest)

	assert.True(t, Verify("pw1", digest))
	assert.False(t, Verify("wrong", digest))
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("same-password")
	assert.NoError(t, err)
	second, err := Hash("same-password")
	assert.NoError(t, err)

	// Random salt means two digests of the same input differ, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerify_GarbageDigest(t *testing.T) {
	assert.False(t, Verify("pw1", "not-a-bcrypt-digest"))
	assert.False(t, Verify("", ""))
}
