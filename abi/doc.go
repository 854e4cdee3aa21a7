// Package abi converts a structured contract-ABI description into the
// chain's canonical binary ABI blob.
//
// A Schema arrives as JSON (usually from a contract's abi file on disk),
// is validated against a closed set of recognized sections, and encodes in
// a fixed order: version, types, structs, actions, tables, then the
// placeholder sections the chain defines but this library does not yet
// populate. The concatenated bytes pass through the hex-then-byte-array
// wire convention shared with WASM payloads.
package abi
