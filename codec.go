package eospyo

import "github.com/Fossilia/eospyo/wire"

// Value is the capability every chain type implements. A Value is validated
// and immutable by the time it exists, so Pack is total: it appends the
// value's canonical byte representation to w without failing.
type Value interface {
	// Pack appends the canonical encoding of the value to w.
	Pack(w *wire.Writer)

	// Size returns the encoded byte length, equal to len(Encode(v)).
	Size() int
}

// Encode returns the canonical byte representation of v.
func Encode(v Value) []byte {
	w := wire.NewWriter()
	v.Pack(w)
	return w.Bytes()
}
