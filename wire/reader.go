package wire

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when a read needs more bytes than remain.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// maxUvarintBytes bounds varuint decoding so malformed input with the
// continuation bit stuck on cannot run away.
const maxUvarintBytes = 9

// Reader consumes a byte slice with position tracking. The slice may
// contain trailing bytes belonging to subsequent fields; each read
// consumes only its own prefix and Position reports the total consumed.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.wrapError(ErrUnexpectedEOF)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, r.wrapError(ErrUnexpectedEOF)
	}
	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// ReadRemaining reads all unread bytes.
func (r *Reader) ReadRemaining() []byte {
	buf := r.data[r.pos:]
	r.pos = len(r.data)
	return buf
}

// ReadU16 reads a little-endian uint16 (fixed 2 bytes).
func (r *Reader) ReadU16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// ReadU32 reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// ReadU64 reads a little-endian uint64 (fixed 8 bytes).
func (r *Reader) ReadU64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

// ReadUvarint reads a variable-length unsigned integer. Decoding stops at
// the first byte whose continuation bit is clear, or after nine bytes.
func (r *Reader) ReadUvarint() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxUvarintBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return result, nil
}

// ReadString reads a varuint length prefix followed by that many raw bytes.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	if uint64(r.Remaining()) < length {
		return "", r.wrapError(ErrUnexpectedEOF)
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}
