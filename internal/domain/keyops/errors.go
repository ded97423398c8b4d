package keyops

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm identifier is not
	// one of the six supported constants.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrSchemeMismatch is returned when an operation is invoked with a key
	// handle whose algorithm belongs to the wrong scheme kind, e.g. signing
	// with a KEM key or encapsulating with a signature key.
	ErrSchemeMismatch = errors.New("operation does not match key scheme kind")

	// ErrInvalidKey is returned when a key handle is malformed or lacks the
	// private material the operation requires.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedSignature is returned when a signature's byte length does
	// not correspond to any valid encoding for the curve. A structurally
	// valid but cryptographically incorrect signature is a false verification
	// result, never an error.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrMalformedCiphertext is returned when a ciphertext's byte length does
	// not match the parameter set of the decapsulating key. It is never used
	// to signal semantic invalidity of a well-sized ciphertext; those
	// decapsulate to a deterministic pseudorandom secret (implicit rejection).
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrRandomnessUnavailable is returned when the secure random source
	// cannot be read.
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")

	// ErrNoPrivateMaterial is returned when private key material is exported
	// from a public-only handle.
	ErrNoPrivateMaterial = errors.New("no private key material")

	// ErrLengthMismatch is returned on import when key material does not have
	// the exact length the algorithm registry mandates.
	ErrLengthMismatch = errors.New("key material length mismatch")
)
