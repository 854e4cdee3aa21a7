package wire

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing utilities for chain binary encoding.
// Fixed-width integers are little-endian; variable-length integers use
// 7 payload bits per byte with a continuation bit in the high bit.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// Write writes a byte slice verbatim.
func (w *Writer) Write(data []byte) {
	w.buf.Write(data)
}

// WriteU16 writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32 writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU64 writes a little-endian uint64 (fixed 8 bytes).
func (w *Writer) WriteU64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteUvarint writes a variable-length unsigned integer.
func (w *Writer) WriteUvarint(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// WriteString writes a varuint length prefix followed by the raw bytes of s.
func (w *Writer) WriteString(s string) {
	w.WriteUvarint(uint64(len(s)))
	w.buf.WriteString(s)
}

// UvarintLen returns the number of bytes WriteUvarint emits for v.
func UvarintLen(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}
