//go:build unit
// +build unit

package keyops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_SupportedAlgorithms(t *testing.T) {
	tests := []struct {
		algorithm      AlgorithmID
		kind           SchemeKind
		publicKeySize  int
		privateKeySize int
		outputSize     int
	}{
		{AlgorithmECCP256, SchemeSignature, 65, 32, 64},
		{AlgorithmECCP384, SchemeSignature, 97, 48, 96},
		{AlgorithmECCP521, SchemeSignature, 133, 66, 132},
		{AlgorithmKyber512, SchemeKEM, 800, 1632, 768},
		{AlgorithmKyber768, SchemeKEM, 1184, 2400, 1088},
		{AlgorithmKyber1024, SchemeKEM, 1568, 3168, 1568},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			params, err := Params(tt.algorithm)
			require.NoError(t, err)

			assert.Equal(t, tt.algorithm, params.ID)
			assert.Equal(t, tt.kind, params.Kind)
			assert.Equal(t, tt.publicKeySize, params.PublicKeySize)
			assert.Equal(t, tt.privateKeySize, params.PrivateKeySize)

			switch tt.kind {
			case SchemeSignature:
				assert.Equal(t, tt.outputSize, params.SignatureSize)
				assert.Zero(t, params.CiphertextSize)
				assert.Zero(t, params.SharedSecretSize)
			case SchemeKEM:
				assert.Equal(t, tt.outputSize, params.CiphertextSize)
				assert.Equal(t, SharedSecretSize, params.SharedSecretSize)
				assert.Zero(t, params.SignatureSize)
			}
		})
	}
}

func TestParams_UnsupportedAlgorithm(t *testing.T) {
	_, err := Params("RSA-2048")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestAlgorithms_CoversRegistry(t *testing.T) {
	ids := Algorithms()
	assert.Len(t, ids, 6)

	for _, id := range ids {
		_, err := Params(id)
		assert.NoError(t, err)
	}
}
