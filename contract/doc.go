// Package contract handles compiled WASM contract bytecode.
//
// Code wraps an opaque byte blob and encodes it with the same
// hex-then-byte-array wire convention the ABI codec uses, with no
// structural interpretation of the bytes. Load reads bytecode from disk,
// transparently extracting from zip archives, and Validate optionally
// compiles the bytecode with wazero to catch malformed contracts before
// they are packed into a transaction.
package contract
