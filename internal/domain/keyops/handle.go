package keyops

import "fmt"

// KeyHandle is the opaque container unifying key material from both
// algorithm families. A handle is either "full" (carries private material,
// usable for signing and decapsulation) or "public-only" (usable for
// verification and encapsulation). The layer never retains a handle beyond
// the call that receives it; retention across calls is the caller's concern.
type KeyHandle struct {
	algorithm AlgorithmID
	public    []byte
	private   []byte
}

// ImportKeyHandle constructs a key handle from raw key material, validating
// the byte lengths against the algorithm registry. privateMaterial may be
// nil for a public-only handle. Caller-supplied lengths are never trusted
// implicitly; any mismatch fails with ErrLengthMismatch.
func ImportKeyHandle(algorithm AlgorithmID, publicMaterial, privateMaterial []byte) (*KeyHandle, error) {
	params, err := Params(algorithm)
	if err != nil {
		return nil, err
	}

	if len(publicMaterial) != params.PublicKeySize {
		return nil, fmt.Errorf("%w: public key for %s must be %d bytes, got %d",
			ErrLengthMismatch, algorithm, params.PublicKeySize, len(publicMaterial))
	}
	if privateMaterial != nil && len(privateMaterial) != params.PrivateKeySize {
		return nil, fmt.Errorf("%w: private key for %s must be %d bytes, got %d",
			ErrLengthMismatch, algorithm, params.PrivateKeySize, len(privateMaterial))
	}

	handle := &KeyHandle{
		algorithm: algorithm,
		public:    append([]byte(nil), publicMaterial...),
	}
	if privateMaterial != nil {
		handle.private = append([]byte(nil), privateMaterial...)
	}
	return handle, nil
}

// Algorithm returns the algorithm identifier the handle was created with.
func (h *KeyHandle) Algorithm() AlgorithmID {
	return h.algorithm
}

// IsFull reports whether the handle carries private key material.
func (h *KeyHandle) IsFull() bool {
	return h.private != nil
}

// ExportPublic returns a copy of the public key material.
func (h *KeyHandle) ExportPublic() []byte {
	return append([]byte(nil), h.public...)
}

// ExportPrivate returns a copy of the private key material. It fails with
// ErrNoPrivateMaterial on a public-only handle.
func (h *KeyHandle) ExportPrivate() ([]byte, error) {
	if h.private == nil {
		return nil, ErrNoPrivateMaterial
	}
	return append([]byte(nil), h.private...), nil
}

// Public returns a public-only handle sharing the same algorithm and public
// key material.
func (h *KeyHandle) Public() *KeyHandle {
	return &KeyHandle{
		algorithm: h.algorithm,
		public:    append([]byte(nil), h.public...),
	}
}

// Zeroize overwrites the private key material in place. The handle becomes
// public-only afterwards.
func (h *KeyHandle) Zeroize() {
	for i := range h.private {
		h.private[i] = 0
	}
	h.private = nil
}

// PublicMaterial returns the public key material without copying. Adapters
// use it to avoid duplicating key bytes per operation; the returned slice
// must not be modified.
func (h *KeyHandle) PublicMaterial() []byte { return h.public }

// PrivateMaterial returns the private key material without copying, or nil
// for a public-only handle. The returned slice must not be modified.
func (h *KeyHandle) PrivateMaterial() []byte { return h.private }
