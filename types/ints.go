package types

import (
	"github.com/Fossilia/eospyo/errors"
	"github.com/Fossilia/eospyo/wire"
)

// VaruintMax is the largest value encodable in the chain's 5-byte varint form.
const VaruintMax = 20989371979

// Bool encodes as a single byte, 0x01 or 0x00.
type Bool bool

// Int8 is a signed 8-bit scalar.
type Int8 int8

// Uint8 is an unsigned 8-bit scalar.
type Uint8 uint8

// Uint16 is an unsigned 16-bit scalar, little-endian on the wire.
type Uint16 uint16

// Uint32 is an unsigned 32-bit scalar, little-endian on the wire.
type Uint32 uint32

// Uint64 is an unsigned 64-bit scalar, little-endian on the wire.
type Uint64 uint64

// Varuint32 is a non-negative integer in [0, VaruintMax], encoded with
// 7 payload bits per byte and a continuation bit.
type Varuint32 uint64

// NewBool wraps a boolean.
func NewBool(v bool) Bool {
	return Bool(v)
}

// NewInt8 validates v against the signed 8-bit range.
func NewInt8(v int64) (Int8, error) {
	if v < -128 || v > 127 {
		return 0, errors.Range("int8", v, -128, 127)
	}
	return Int8(v), nil
}

// NewUint8 validates v against the unsigned 8-bit range.
func NewUint8(v int64) (Uint8, error) {
	if v < 0 || v > 0xff {
		return 0, errors.Range("uint8", v, 0, 0xff)
	}
	return Uint8(v), nil
}

// NewUint16 validates v against the unsigned 16-bit range.
func NewUint16(v int64) (Uint16, error) {
	if v < 0 || v > 0xffff {
		return 0, errors.Range("uint16", v, 0, 0xffff)
	}
	return Uint16(v), nil
}

// NewUint32 validates v against the unsigned 32-bit range.
func NewUint32(v int64) (Uint32, error) {
	if v < 0 || v > 0xffffffff {
		return 0, errors.Range("uint32", v, 0, 0xffffffff)
	}
	return Uint32(v), nil
}

// NewUint64 wraps v. The native type already spans the wire domain.
func NewUint64(v uint64) Uint64 {
	return Uint64(v)
}

// NewVaruint32 validates v against [0, VaruintMax].
func NewVaruint32(v uint64) (Varuint32, error) {
	if v > VaruintMax {
		return 0, errors.Range("varuint32", v, 0, uint64(VaruintMax))
	}
	return Varuint32(v), nil
}

func (v Bool) Pack(w *wire.Writer) {
	if v {
		w.Byte(0x01)
	} else {
		w.Byte(0x00)
	}
}

func (v Int8) Pack(w *wire.Writer)   { w.Byte(byte(v)) }
func (v Uint8) Pack(w *wire.Writer)  { w.Byte(byte(v)) }
func (v Uint16) Pack(w *wire.Writer) { w.WriteU16(uint16(v)) }
func (v Uint32) Pack(w *wire.Writer) { w.WriteU32(uint32(v)) }
func (v Uint64) Pack(w *wire.Writer) { w.WriteU64(uint64(v)) }

func (v Varuint32) Pack(w *wire.Writer) { w.WriteUvarint(uint64(v)) }

func (v Bool) Size() int   { return 1 }
func (v Int8) Size() int   { return 1 }
func (v Uint8) Size() int  { return 1 }
func (v Uint16) Size() int { return 2 }
func (v Uint32) Size() int { return 4 }
func (v Uint64) Size() int { return 8 }

func (v Varuint32) Size() int { return wire.UvarintLen(uint64(v)) }

// UnpackBool reads a single byte; any non-zero value is true.
func UnpackBool(r *wire.Reader) (Bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, errors.Truncated("bool", err)
	}
	return b != 0, nil
}

// UnpackInt8 reads a signed 8-bit scalar.
func UnpackInt8(r *wire.Reader) (Int8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Truncated("int8", err)
	}
	return Int8(b), nil
}

// UnpackUint8 reads an unsigned 8-bit scalar.
func UnpackUint8(r *wire.Reader) (Uint8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, errors.Truncated("uint8", err)
	}
	return Uint8(b), nil
}

// UnpackUint16 reads a little-endian unsigned 16-bit scalar.
func UnpackUint16(r *wire.Reader) (Uint16, error) {
	v, err := r.ReadU16()
	if err != nil {
		return 0, errors.Truncated("uint16", err)
	}
	return Uint16(v), nil
}

// UnpackUint32 reads a little-endian unsigned 32-bit scalar.
func UnpackUint32(r *wire.Reader) (Uint32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, errors.Truncated("uint32", err)
	}
	return Uint32(v), nil
}

// UnpackUint64 reads a little-endian unsigned 64-bit scalar.
func UnpackUint64(r *wire.Reader) (Uint64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, errors.Truncated("uint64", err)
	}
	return Uint64(v), nil
}

// UnpackVaruint32 reads a variable-length unsigned integer. Decoding stops
// at the first byte with a clear continuation bit, or after nine bytes.
// Decoded values outside [0, VaruintMax] are rejected, mirroring construction.
func UnpackVaruint32(r *wire.Reader) (Varuint32, error) {
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, errors.Truncated("varuint32", err)
	}
	return NewVaruint32(v)
}

// decodeOne runs unpack against a fresh reader over data and reports the
// number of bytes consumed. data may carry trailing bytes belonging to
// subsequent fields.
func decodeOne[T any](data []byte, unpack func(*wire.Reader) (T, error)) (T, int, error) {
	r := wire.NewReader(data)
	v, err := unpack(r)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return v, r.Position(), nil
}

// DecodeBool decodes a Bool from the front of data.
func DecodeBool(data []byte) (Bool, int, error) { return decodeOne(data, UnpackBool) }

// DecodeInt8 decodes an Int8 from the front of data.
func DecodeInt8(data []byte) (Int8, int, error) { return decodeOne(data, UnpackInt8) }

// DecodeUint8 decodes a Uint8 from the front of data.
func DecodeUint8(data []byte) (Uint8, int, error) { return decodeOne(data, UnpackUint8) }

// DecodeUint16 decodes a Uint16 from the front of data.
func DecodeUint16(data []byte) (Uint16, int, error) { return decodeOne(data, UnpackUint16) }

// DecodeUint32 decodes a Uint32 from the front of data.
func DecodeUint32(data []byte) (Uint32, int, error) { return decodeOne(data, UnpackUint32) }

// DecodeUint64 decodes a Uint64 from the front of data.
func DecodeUint64(data []byte) (Uint64, int, error) { return decodeOne(data, UnpackUint64) }

// DecodeVaruint32 decodes a Varuint32 from the front of data.
func DecodeVaruint32(data []byte) (Varuint32, int, error) { return decodeOne(data, UnpackVaruint32) }
