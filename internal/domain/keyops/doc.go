// Package keyops defines the core types and contracts for the unified
// key-operations layer: the algorithm registry, the key handle container
// unifying classical and post-quantum key material, and the adapter and
// facade interfaces for key generation, signing, verification,
// encapsulation and decapsulation.
package keyops
