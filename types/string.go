package types

import (
	"github.com/Fossilia/eospyo/errors"
	"github.com/Fossilia/eospyo/wire"
)

// String is UTF-8 text, length-prefixed on the wire. The wire format packs
// one byte per character, so multi-byte code points are rejected at
// construction. This is a deliberate limitation of the chain encoding.
type String string

// NewString validates that every character of s is single-byte UTF-8.
func NewString(s string) (String, error) {
	for _, c := range s {
		if c > 0x7f {
			return "", errors.Encoding("string", s)
		}
	}
	return String(s), nil
}

func (v String) Pack(w *wire.Writer) {
	w.WriteString(string(v))
}

func (v String) Size() int {
	return wire.UvarintLen(uint64(len(v))) + len(v)
}

// UnpackString reads a varuint length prefix and that many bytes.
func UnpackString(r *wire.Reader) (String, error) {
	s, err := r.ReadString()
	if err != nil {
		return "", errors.Truncated("string", err)
	}
	return String(s), nil
}

// DecodeString decodes a String from the front of data.
func DecodeString(data []byte) (String, int, error) {
	return decodeOne(data, UnpackString)
}

// Bytes is a raw byte sequence with identity encoding: no length prefix and
// no constraint on content.
type Bytes []byte

// NewBytes copies b into an owned Bytes value.
func NewBytes(b []byte) Bytes {
	out := make(Bytes, len(b))
	copy(out, b)
	return out
}

func (v Bytes) Pack(w *wire.Writer) {
	w.Write(v)
}

func (v Bytes) Size() int { return len(v) }

// UnpackBytes consumes all remaining bytes of the reader. Identity encoding
// carries no length marker, so the caller's buffer defines the extent.
func UnpackBytes(r *wire.Reader) (Bytes, error) {
	return NewBytes(r.ReadRemaining()), nil
}

// DecodeBytes decodes a Bytes from data, consuming it entirely.
func DecodeBytes(data []byte) (Bytes, int, error) {
	return decodeOne(data, UnpackBytes)
}
