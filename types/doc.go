// Package types implements the chain's native value types.
//
// Every type wraps one validated payload and implements eospyo.Value:
// construction validates and canonicalizes, Pack appends the canonical
// little-endian wire encoding, and a matching Unpack/Decode pair rebuilds
// the value from bytes, reporting how many bytes were consumed.
//
// Scalars (fixed-width integers, Bool, Varuint32, Bytes) are the leaves;
// String, UnixTimestamp, Name, Symbol, Asset and the generic Array compose
// them. FromString resolves a type by its chain name for ABI-driven
// serialization.
package types
