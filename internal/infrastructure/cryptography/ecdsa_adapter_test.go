//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/pkg/testutil"
)

// failingReader simulates an unreadable secure random source.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

func setupECDSAAdapter(t *testing.T) keyops.SignatureAdapter {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	adapter, err := NewECDSAAdapter(rand.Reader, log)
	require.NoError(t, err)
	return adapter
}

func TestECDSAAdapter_GenerateKey(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	for _, algorithm := range []keyops.AlgorithmID{
		keyops.AlgorithmECCP256,
		keyops.AlgorithmECCP384,
		keyops.AlgorithmECCP521,
	} {
		t.Run(string(algorithm), func(t *testing.T) {
			handle, err := adapter.GenerateKey(algorithm)
			require.NoError(t, err)

			params, err := keyops.Params(algorithm)
			require.NoError(t, err)

			assert.True(t, handle.IsFull())
			assert.Len(t, handle.ExportPublic(), params.PublicKeySize)

			private, err := handle.ExportPrivate()
			require.NoError(t, err)
			assert.Len(t, private, params.PrivateKeySize)

			// Uncompressed point encoding starts with 0x04.
			assert.Equal(t, byte(0x04), handle.ExportPublic()[0])
		})
	}
}

func TestECDSAAdapter_GenerateKey_RandomnessUnavailable(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	adapter, err := NewECDSAAdapter(failingReader{}, log)
	require.NoError(t, err)

	_, err = adapter.GenerateKey(keyops.AlgorithmECCP256)
	assert.ErrorIs(t, err, keyops.ErrRandomnessUnavailable)
}

func TestECDSAAdapter_GenerateKey_KyberAlgorithm(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	_, err := adapter.GenerateKey(keyops.AlgorithmKyber768)
	assert.ErrorIs(t, err, keyops.ErrSchemeMismatch)
}

func TestECDSAAdapter_SignVerify(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	for _, algorithm := range []keyops.AlgorithmID{
		keyops.AlgorithmECCP256,
		keyops.AlgorithmECCP384,
		keyops.AlgorithmECCP521,
	} {
		t.Run(string(algorithm), func(t *testing.T) {
			handle, err := adapter.GenerateKey(algorithm)
			require.NoError(t, err)

			params, err := keyops.Params(algorithm)
			require.NoError(t, err)

			message := []byte("This is a test message.")
			signature, err := adapter.Sign(handle, message)
			require.NoError(t, err)
			assert.Len(t, signature, params.SignatureSize)

			valid, err := adapter.Verify(handle, message, signature)
			require.NoError(t, err)
			assert.True(t, valid)

			// Verification with the public-only handle must also succeed.
			valid, err = adapter.Verify(handle.Public(), message, signature)
			require.NoError(t, err)
			assert.True(t, valid)

			// A corrupted signature is a false result, not an error.
			corrupted := append([]byte(nil), signature...)
			corrupted[len(corrupted)-1] ^= 0x01
			valid, err = adapter.Verify(handle, message, corrupted)
			require.NoError(t, err)
			assert.False(t, valid)

			// Same for a modified message.
			valid, err = adapter.Verify(handle, []byte("Modified message."), signature)
			require.NoError(t, err)
			assert.False(t, valid)
		})
	}
}

func TestECDSAAdapter_Sign_PublicOnlyHandle(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	handle, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)

	_, err = adapter.Sign(handle.Public(), []byte("message"))
	assert.ErrorIs(t, err, keyops.ErrInvalidKey)
}

func TestECDSAAdapter_Sign_MismatchedKeyPair(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	first, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)
	second, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)

	// Private scalar of one pair with the public point of another.
	private, err := second.ExportPrivate()
	require.NoError(t, err)
	mixed, err := keyops.ImportKeyHandle(keyops.AlgorithmECCP256, first.ExportPublic(), private)
	require.NoError(t, err)

	_, err = adapter.Sign(mixed, []byte("message"))
	assert.ErrorIs(t, err, keyops.ErrInvalidKey)
}

func TestECDSAAdapter_Verify_MalformedSignature(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	handle, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)

	message := []byte("message")
	signature, err := adapter.Sign(handle, message)
	require.NoError(t, err)

	_, err = adapter.Verify(handle, message, signature[:len(signature)-1])
	assert.ErrorIs(t, err, keyops.ErrMalformedSignature)

	_, err = adapter.Verify(handle, message, nil)
	assert.ErrorIs(t, err, keyops.ErrMalformedSignature)
}

func TestECDSAAdapter_DeriveSharedSecret(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	for _, algorithm := range []keyops.AlgorithmID{
		keyops.AlgorithmECCP256,
		keyops.AlgorithmECCP384,
		keyops.AlgorithmECCP521,
	} {
		t.Run(string(algorithm), func(t *testing.T) {
			alice, err := adapter.GenerateKey(algorithm)
			require.NoError(t, err)
			bob, err := adapter.GenerateKey(algorithm)
			require.NoError(t, err)

			aliceSecret, err := adapter.DeriveSharedSecret(alice, bob.ExportPublic())
			require.NoError(t, err)
			bobSecret, err := adapter.DeriveSharedSecret(bob, alice.ExportPublic())
			require.NoError(t, err)

			assert.Equal(t, aliceSecret, bobSecret)
			assert.NotEmpty(t, aliceSecret)
		})
	}
}

func TestECDSAAdapter_DeriveSharedSecret_PublicOnlyHandle(t *testing.T) {
	adapter := setupECDSAAdapter(t)

	alice, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)
	bob, err := adapter.GenerateKey(keyops.AlgorithmECCP256)
	require.NoError(t, err)

	_, err = adapter.DeriveSharedSecret(alice.Public(), bob.ExportPublic())
	assert.ErrorIs(t, err, keyops.ErrInvalidKey)
}
