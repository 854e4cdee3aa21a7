package types

import (
	"encoding/hex"

	"github.com/Fossilia/eospyo/errors"
)

// HexToUint8Array converts a hex string into an Array of Uint8, one element
// per byte pair. This is the wire convention for ABI and WASM payloads:
// raw bytes become lowercase hex, and the hex digits travel as a
// length-prefixed byte array.
func HexToUint8Array(s string) (Array[Uint8], error) {
	if len(s)%2 != 0 {
		return Array[Uint8]{}, errors.Format("bytes", s, "odd number of hex digits")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Array[Uint8]{}, errors.Format("bytes", s, "invalid hex digit")
	}
	elems := make([]Uint8, len(raw))
	for i, b := range raw {
		elems[i] = Uint8(b)
	}
	return Array[Uint8]{elems: elems}, nil
}

// Uint8ArrayToHex is the inverse of HexToUint8Array.
func Uint8ArrayToHex(a Array[Uint8]) string {
	raw := make([]byte, a.Len())
	for i := range raw {
		raw[i] = byte(a.At(i))
	}
	return hex.EncodeToString(raw)
}
