// Package wire encodes dealing outputs for whatever transport or storage
// the caller uses. Broadcasts and private shares are converted to plain
// message structs holding hex-encoded canonical bytes, then serialized
// with JSON, CBOR, MessagePack or YAML.
//
// Decoding validates every field: commitments must decode to points of
// the group and shares to canonical scalars.
package wire
