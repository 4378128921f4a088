//go:build unit

package secret_test

import (
	"testing"

	"timeslot-api/internal/pkg/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPlainSecret(t *testing.T) {
	v := secret.NewVerifier("admin123")

	assert.True(t, v.Verify("admin123"))
	assert.False(t, v.Verify("admin124"))
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("admin1234"))
}

func TestVerifyBcryptSecret(t *testing.T) {
	hash, err := secret.Hash("admin123")
	require.NoError(t, err)
	v := secret.NewVerifier(hash)

	assert.True(t, v.Verify("admin123"))
	assert.False(t, v.Verify("admin124"))
	assert.False(t, v.Verify(""))
	// the hash itself is not the secret
	assert.False(t, v.Verify(hash))
}

func TestVerifyEmptyConfiguration(t *testing.T) {
	v := secret.NewVerifier("")
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("anything"))
}
