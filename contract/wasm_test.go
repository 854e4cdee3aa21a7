package contract

import (
	"bytes"
	"context"
	"testing"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/wire"
)

// emptyModule is the smallest valid core wasm module: magic + version.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestCodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0xab}},
		{"module header", emptyModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := NewCode(tt.data)
			encoded := eospyo.Encode(code)

			if len(encoded) != code.Size() {
				t.Errorf("Size() = %d, encoded %d bytes", code.Size(), len(encoded))
			}

			decoded, n, err := DecodeCode(encoded)
			if err != nil {
				t.Fatalf("DecodeCode() error = %v", err)
			}
			if n != len(encoded) {
				t.Errorf("consumed %d of %d bytes", n, len(encoded))
			}
			if !bytes.Equal(decoded.Bytes(), tt.data) {
				t.Errorf("round trip = %x, want %x", decoded.Bytes(), tt.data)
			}
		})
	}
}

func TestCodeWireLayout(t *testing.T) {
	code := NewCode([]byte{0xde, 0xad, 0xbe, 0xef})

	w := wire.NewWriter()
	code.Pack(w)

	want := []byte{0x04, 0xde, 0xad, 0xbe, 0xef}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Pack() = %x, want %x", got, want)
	}
}

func TestCodeHex(t *testing.T) {
	code := NewCode([]byte{0x00, 0x61, 0x73, 0x6d})
	if got, want := code.Hex(), "0061736d"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func TestCodeBytesIsCopy(t *testing.T) {
	original := []byte{1, 2, 3}
	code := NewCode(original)

	original[0] = 99
	if code.Bytes()[0] != 1 {
		t.Error("NewCode() did not copy its input")
	}

	out := code.Bytes()
	out[1] = 99
	if code.Bytes()[1] != 2 {
		t.Error("Bytes() did not return a copy")
	}
}

func TestDecodeCodeTruncated(t *testing.T) {
	// Length prefix promises 4 bytes, only 2 follow.
	_, _, err := DecodeCode([]byte{0x04, 0xde, 0xad})
	if err == nil {
		t.Fatal("DecodeCode() expected error for truncated payload")
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	if err := NewCode(emptyModule).Validate(ctx); err != nil {
		t.Errorf("Validate() error = %v for minimal module", err)
	}

	if err := NewCode([]byte{0xff, 0xff, 0xff, 0xff}).Validate(ctx); err == nil {
		t.Error("Validate() expected error for garbage bytecode")
	}
}
