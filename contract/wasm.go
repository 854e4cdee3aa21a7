package contract

import (
	"encoding/hex"

	"github.com/Fossilia/eospyo/types"
	"github.com/Fossilia/eospyo/wire"
)

// Code is compiled contract bytecode. The payload is opaque: any byte
// sequence is valid at this layer.
type Code struct {
	data []byte
}

// NewCode copies b into an owned Code value.
func NewCode(b []byte) Code {
	data := make([]byte, len(b))
	copy(data, b)
	return Code{data: data}
}

// Bytes returns a copy of the bytecode.
func (c Code) Bytes() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// Hex returns the lowercase hex form of the bytecode, the textual
// convention the chain's JSON-RPC uses for code payloads.
func (c Code) Hex() string {
	return hex.EncodeToString(c.data)
}

// Pack appends the wire form: the hex payload re-exposed as a
// length-prefixed array of single bytes, exactly as ABI blobs travel.
func (c Code) Pack(w *wire.Writer) {
	arr, err := types.HexToUint8Array(c.Hex())
	if err != nil {
		// Hex produced by this package is always well formed.
		panic(err)
	}
	arr.Pack(w)
}

// Size returns the encoded byte length.
func (c Code) Size() int {
	return wire.UvarintLen(uint64(len(c.data))) + len(c.data)
}

// UnpackCode reads a length-prefixed byte array, reassembles the hex
// payload, and recovers the raw bytecode.
func UnpackCode(r *wire.Reader) (Code, error) {
	arr, err := types.UnpackArray(r, types.UnpackUint8)
	if err != nil {
		return Code{}, err
	}
	raw, err := hex.DecodeString(types.Uint8ArrayToHex(arr))
	if err != nil {
		// Uint8ArrayToHex emits well-formed hex by construction.
		panic(err)
	}
	return Code{data: raw}, nil
}

// DecodeCode decodes a Code from the front of data, reporting consumed
// bytes.
func DecodeCode(data []byte) (Code, int, error) {
	r := wire.NewReader(data)
	c, err := UnpackCode(r)
	if err != nil {
		return Code{}, 0, err
	}
	return c, r.Position(), nil
}
