// Package eospyo implements the binary serialization layer for an
// EOSIO-family blockchain's native data encoding.
//
// Every chain value type produces a canonical byte representation and can
// reconstruct itself from one. Transaction builders, contract-ABI tooling,
// and network clients use these types to turn human-readable values
// (account names, token amounts, timestamps, contract definitions) into the
// exact byte layout chain nodes expect, and back.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	eospyo/       Root package with the Value capability interface
//	├── wire/     Little-endian and varuint byte-level Reader/Writer primitives
//	├── types/    Scalar and composite chain types plus the type registry
//	├── abi/      Contract-ABI schema loading and binary ABI encoding
//	├── contract/ WASM bytecode wrapping, file/zip loading, wazero validation
//	├── errors/   Structured validation and decode errors
//	└── cmd/pack/ Command-line encoder with an interactive mode
//
// # Quick Start
//
// Build and encode a chain value:
//
//	name, err := types.NewName("eosio.token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := eospyo.Encode(name)
//	fmt.Printf("%x\n", data)
//
// Decode is the mirror; every decode reports how many bytes it consumed so
// callers can advance through a larger buffer:
//
//	name, n, err := types.DecodeName(data)
//
// # Validation Model
//
// Validation happens at construction. A constructor either returns a fully
// validated immutable value, for which encoding is total, or a structured
// error from the errors package identifying what failed. Nothing is coerced
// or truncated silently (the one documented exception: timestamps drop
// sub-second precision).
//
// # Thread Safety
//
// All values are immutable after construction and the type registry is
// built once at package init. Any number of goroutines may encode and
// decode independent values concurrently without coordination.
package eospyo
