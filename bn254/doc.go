// Package bn254 provides the BN254 (alt_bn128) implementation of the
// [group.Group] interface used by the Feldman VSS engine.
//
// Scalars are elements of the BN254 scalar field Fr and points are
// elements of the order-r subgroup of G2, the twist group over Fp2 in
// which threshold BLS public keys live. Verification vectors produced
// over this group can therefore be combined directly into BLS group
// public keys by downstream code.
//
// This package wraps the implementation from gnark-crypto, providing a
// clean interface that satisfies [group.Group], [group.Scalar], and
// [group.Point].
//
// # Usage
//
//	g := bn254.NewG2()
//	engine, err := dkg.New(g, threshold, total)
//
// # Encodings
//
// Scalars encode as 32-byte big-endian values and must be canonical
// (strictly less than r). Points encode in the 64-byte compressed form
// of gnark-crypto; decoding checks that the point is on the curve and in
// the prime-order subgroup.
package bn254
