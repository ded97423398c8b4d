package cryptography

import (
	"bytes"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"
	"math/big"

	"github.com/keyops/crypto-keyops/internal/domain/keyops"
	"github.com/keyops/crypto-keyops/internal/pkg/logger"
)

// ecdsaAdapter implements the SignatureAdapter interface on top of the
// standard library elliptic curve provider.
type ecdsaAdapter struct {
	rand   io.Reader
	logger logger.Logger
}

// NewECDSAAdapter creates a signature adapter for the P-256, P-384 and P-521
// curves. rand is the secure random source used for key generation and
// signing nonces; it must be safe for concurrent use.
func NewECDSAAdapter(rand io.Reader, logger logger.Logger) (keyops.SignatureAdapter, error) {
	if rand == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &ecdsaAdapter{
		rand:   rand,
		logger: logger,
	}, nil
}

// curveFor maps a signature algorithm to its named curve.
func curveFor(algorithm keyops.AlgorithmID) (elliptic.Curve, error) {
	switch algorithm {
	case keyops.AlgorithmECCP256:
		return elliptic.P256(), nil
	case keyops.AlgorithmECCP384:
		return elliptic.P384(), nil
	case keyops.AlgorithmECCP521:
		return elliptic.P521(), nil
	default:
		return nil, fmt.Errorf("%w: %s is not an elliptic curve signature algorithm",
			keyops.ErrSchemeMismatch, algorithm)
	}
}

// ecdhCurveFor maps a signature algorithm to the matching ECDH curve.
func ecdhCurveFor(algorithm keyops.AlgorithmID) (ecdh.Curve, error) {
	switch algorithm {
	case keyops.AlgorithmECCP256:
		return ecdh.P256(), nil
	case keyops.AlgorithmECCP384:
		return ecdh.P384(), nil
	case keyops.AlgorithmECCP521:
		return ecdh.P521(), nil
	default:
		return nil, fmt.Errorf("%w: %s is not an elliptic curve signature algorithm",
			keyops.ErrSchemeMismatch, algorithm)
	}
}

// digestFor hashes the message with the digest bound to the curve's security
// level: SHA-256 for P-256, SHA-384 for P-384, SHA-512 for P-521. The
// pairing is fixed on purpose; a configurable digest would allow weakening
// the curve's security level.
func digestFor(algorithm keyops.AlgorithmID, message []byte) ([]byte, error) {
	switch algorithm {
	case keyops.AlgorithmECCP256:
		digest := sha256.Sum256(message)
		return digest[:], nil
	case keyops.AlgorithmECCP384:
		digest := sha512.Sum384(message)
		return digest[:], nil
	case keyops.AlgorithmECCP521:
		digest := sha512.Sum512(message)
		return digest[:], nil
	default:
		return nil, fmt.Errorf("%w: %s is not an elliptic curve signature algorithm",
			keyops.ErrSchemeMismatch, algorithm)
	}
}

// GenerateKey generates an elliptic curve key pair and returns it as a full
// key handle with uncompressed-point public material and a fixed-width
// private scalar.
func (a *ecdsaAdapter) GenerateKey(algorithm keyops.AlgorithmID) (*keyops.KeyHandle, error) {
	curve, err := curveFor(algorithm)
	if err != nil {
		return nil, err
	}
	params, err := keyops.Params(algorithm)
	if err != nil {
		return nil, err
	}

	privateKey, err := ecdsa.GenerateKey(curve, a.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrRandomnessUnavailable, err)
	}

	scalarSize := params.PrivateKeySize
	public := encodePublicPoint(privateKey.PublicKey.X, privateKey.PublicKey.Y, scalarSize)
	private := make([]byte, scalarSize)
	privateKey.D.FillBytes(private)

	handle, err := keyops.ImportKeyHandle(algorithm, public, private)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Generated ", algorithm, " key pair")
	return handle, nil
}

// Sign signs a message with the handle's private scalar. The signature is
// the fixed-width r || s concatenation mandated by the algorithm registry.
func (a *ecdsaAdapter) Sign(handle *keyops.KeyHandle, message []byte) ([]byte, error) {
	privateKey, params, err := a.privateKeyFromHandle(handle)
	if err != nil {
		return nil, err
	}

	digest, err := digestFor(handle.Algorithm(), message)
	if err != nil {
		return nil, err
	}

	r, s, err := ecdsa.Sign(a.rand, privateKey, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrRandomnessUnavailable, err)
	}

	scalarSize := params.PrivateKeySize
	signature := make([]byte, 2*scalarSize)
	r.FillBytes(signature[:scalarSize])
	s.FillBytes(signature[scalarSize:])

	a.logger.Info(handle.Algorithm(), " signing succeeded")
	return signature, nil
}

// Verify checks a fixed-width r || s signature against the handle's public
// point. An incorrect signature is a false result, not an error.
func (a *ecdsaAdapter) Verify(handle *keyops.KeyHandle, message, signature []byte) (bool, error) {
	curve, err := curveFor(handle.Algorithm())
	if err != nil {
		return false, err
	}
	params, err := keyops.Params(handle.Algorithm())
	if err != nil {
		return false, err
	}

	if len(signature) != params.SignatureSize {
		return false, fmt.Errorf("%w: signature for %s must be %d bytes, got %d",
			keyops.ErrMalformedSignature, handle.Algorithm(), params.SignatureSize, len(signature))
	}

	x, y, err := decodePublicPoint(curve, handle.PublicMaterial())
	if err != nil {
		return false, err
	}

	digest, err := digestFor(handle.Algorithm(), message)
	if err != nil {
		return false, err
	}

	publicKey := &ecdsa.PublicKey{Curve: curve, X: x, Y: y}
	scalarSize := params.PrivateKeySize
	r := new(big.Int).SetBytes(signature[:scalarSize])
	s := new(big.Int).SetBytes(signature[scalarSize:])

	return ecdsa.Verify(publicKey, digest, r, s), nil
}

// DeriveSharedSecret performs an ECDH exchange between the handle's private
// scalar and a peer public key in uncompressed point encoding.
func (a *ecdsaAdapter) DeriveSharedSecret(handle *keyops.KeyHandle, peerPublic []byte) ([]byte, error) {
	if !handle.IsFull() {
		return nil, fmt.Errorf("%w: shared secret derivation requires private key material",
			keyops.ErrInvalidKey)
	}

	curve, err := ecdhCurveFor(handle.Algorithm())
	if err != nil {
		return nil, err
	}

	privateKey, err := curve.NewPrivateKey(handle.PrivateMaterial())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keyops.ErrInvalidKey, err)
	}

	peerKey, err := curve.NewPublicKey(peerPublic)
	if err != nil {
		return nil, fmt.Errorf("%w: peer public key: %v", keyops.ErrInvalidKey, err)
	}

	secret, err := privateKey.ECDH(peerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive shared secret: %w", err)
	}

	a.logger.Info(handle.Algorithm(), " shared secret derivation succeeded")
	return secret, nil
}

// privateKeyFromHandle reconstructs the ECDSA private key from a full
// handle, verifying that the stored public point matches the scalar.
func (a *ecdsaAdapter) privateKeyFromHandle(handle *keyops.KeyHandle) (*ecdsa.PrivateKey, keyops.AlgorithmParams, error) {
	curve, err := curveFor(handle.Algorithm())
	if err != nil {
		return nil, keyops.AlgorithmParams{}, err
	}
	params, err := keyops.Params(handle.Algorithm())
	if err != nil {
		return nil, keyops.AlgorithmParams{}, err
	}

	if !handle.IsFull() {
		return nil, keyops.AlgorithmParams{}, fmt.Errorf("%w: signing requires private key material",
			keyops.ErrInvalidKey)
	}

	d := new(big.Int).SetBytes(handle.PrivateMaterial())
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, keyops.AlgorithmParams{}, fmt.Errorf("%w: private scalar out of range",
			keyops.ErrInvalidKey)
	}

	x, y := curve.ScalarBaseMult(d.Bytes())
	expected := encodePublicPoint(x, y, params.PrivateKeySize)
	if !bytes.Equal(expected, handle.PublicMaterial()) {
		return nil, keyops.AlgorithmParams{}, fmt.Errorf("%w: public point does not match private scalar",
			keyops.ErrInvalidKey)
	}

	privateKey := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}
	return privateKey, params, nil
}

// encodePublicPoint encodes an affine point as 0x04 || X || Y with
// fixed-width coordinates.
func encodePublicPoint(x, y *big.Int, scalarSize int) []byte {
	encoded := make([]byte, 1+2*scalarSize)
	encoded[0] = 0x04
	x.FillBytes(encoded[1 : 1+scalarSize])
	y.FillBytes(encoded[1+scalarSize:])
	return encoded
}

// decodePublicPoint parses an uncompressed point encoding and checks the
// point lies on the curve.
func decodePublicPoint(curve elliptic.Curve, encoded []byte) (*big.Int, *big.Int, error) {
	scalarSize := (curve.Params().BitSize + 7) / 8
	if len(encoded) != 1+2*scalarSize || encoded[0] != 0x04 {
		return nil, nil, fmt.Errorf("%w: not an uncompressed point encoding", keyops.ErrInvalidKey)
	}

	x := new(big.Int).SetBytes(encoded[1 : 1+scalarSize])
	y := new(big.Int).SetBytes(encoded[1+scalarSize:])

	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, nil, fmt.Errorf("%w: point at infinity", keyops.ErrInvalidKey)
	}
	if !curve.IsOnCurve(x, y) {
		return nil, nil, fmt.Errorf("%w: point not on curve", keyops.ErrInvalidKey)
	}

	return x, y, nil
}
