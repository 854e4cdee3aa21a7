package types

import (
	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/wire"
)

// Array is a homogeneous ordered sequence of chain values: a varuint
// element count followed by each element's encoding concatenated in order.
// Order is semantically significant and preserved.
type Array[T eospyo.Value] struct {
	elems []T
}

// NewArray builds an Array from already-validated elements. The slice is
// copied; the array owns its elements.
func NewArray[T eospyo.Value](elems ...T) Array[T] {
	owned := make([]T, len(elems))
	copy(owned, elems)
	return Array[T]{elems: owned}
}

// MakeArray constructs one element per native value through ctor. The first
// construction failure aborts the whole array; there are no partial arrays.
func MakeArray[N any, T eospyo.Value](natives []N, ctor func(N) (T, error)) (Array[T], error) {
	elems := make([]T, len(natives))
	for i, n := range natives {
		v, err := ctor(n)
		if err != nil {
			return Array[T]{}, err
		}
		elems[i] = v
	}
	return Array[T]{elems: elems}, nil
}

// Len returns the element count.
func (v Array[T]) Len() int { return len(v.elems) }

// At returns the element at index i.
func (v Array[T]) At(i int) T { return v.elems[i] }

// Values returns a copy of the element slice.
func (v Array[T]) Values() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

func (v Array[T]) Pack(w *wire.Writer) {
	w.WriteUvarint(uint64(len(v.elems)))
	for _, e := range v.elems {
		e.Pack(w)
	}
}

func (v Array[T]) Size() int {
	n := wire.UvarintLen(uint64(len(v.elems)))
	for _, e := range v.elems {
		n += e.Size()
	}
	return n
}

// UnpackArray reads a varuint element count and then decodes exactly that
// many elements with unpack, the offset advancing by each element's
// consumed length. Bytes past the final element are left unread.
func UnpackArray[T eospyo.Value](r *wire.Reader, unpack func(*wire.Reader) (T, error)) (Array[T], error) {
	count, err := UnpackVaruint32(r)
	if err != nil {
		return Array[T]{}, err
	}
	// Grow by append rather than preallocating count elements: the count
	// comes from untrusted input.
	var elems []T
	for i := uint64(0); i < uint64(count); i++ {
		e, err := unpack(r)
		if err != nil {
			return Array[T]{}, err
		}
		elems = append(elems, e)
	}
	return Array[T]{elems: elems}, nil
}

// DecodeArray decodes an Array from the front of data, reporting consumed
// bytes so trailing input is left to the caller.
func DecodeArray[T eospyo.Value](data []byte, unpack func(*wire.Reader) (T, error)) (Array[T], int, error) {
	r := wire.NewReader(data)
	v, err := UnpackArray(r, unpack)
	if err != nil {
		return Array[T]{}, 0, err
	}
	return v, r.Position(), nil
}
