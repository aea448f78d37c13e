// Package group defines abstract interfaces for the scalar field and the
// commitment group used by the Feldman verifiable secret sharing engine.
//
// This package provides three core interfaces:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// Operations that can fail (decoding, reading randomness) return errors
// rather than panicking.
//
// # Implementing a Group
//
// To implement these interfaces for a new curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the bn254 package for the implementation over the BN254 G2 subgroup.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are uniform over the whole field
//   - Zeroize overwrites the scalar in place rather than dropping a reference
//   - Invalid curve points and non-canonical scalars are rejected in SetBytes
package group
