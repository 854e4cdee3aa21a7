package types

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/errors"
)

func TestStringEncoding(t *testing.T) {
	s, err := NewString("hello")
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	want := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	if got := eospyo.Encode(s); !bytes.Equal(got, want) {
		t.Errorf("encode: got %v, want %v", got, want)
	}
	if s.Size() != len(want) {
		t.Errorf("Size: got %d, want %d", s.Size(), len(want))
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a", "hello world", "transfer(from,to,quantity,memo)"} {
		s, err := NewString(text)
		if err != nil {
			t.Fatalf("NewString(%q): %v", text, err)
		}
		data := eospyo.Encode(s)
		back, consumed, err := DecodeString(append(data, 0xFF, 0xFE))
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", text, err)
		}
		if consumed != len(data) {
			t.Errorf("%q: consumed %d, want %d", text, consumed, len(data))
		}
		if back != s {
			t.Errorf("%q: round trip gave %q", text, back)
		}
	}
}

func TestStringRejectsMultiByte(t *testing.T) {
	encodingErr := &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindEncoding}
	for _, text := range []string{"café", "日本", "emoji \U0001f600"} {
		_, err := NewString(text)
		if !stderrors.Is(err, encodingErr) {
			t.Errorf("NewString(%q): got %v, want encoding error", text, err)
		}
	}
}

func TestStringDecodeTruncated(t *testing.T) {
	if _, _, err := DecodeString([]byte{0x05, 'a', 'b'}); err == nil {
		t.Error("expected error when length prefix exceeds available bytes")
	}
}

func TestBytesIdentity(t *testing.T) {
	raw := []byte{0x00, 0x01, 0xFF}
	b := NewBytes(raw)
	if got := eospyo.Encode(b); !bytes.Equal(got, raw) {
		t.Errorf("encode: got %v, want %v", got, raw)
	}
	if b.Size() != 3 {
		t.Errorf("Size: got %d, want 3", b.Size())
	}

	back, consumed, err := DecodeBytes(raw)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !bytes.Equal(back, raw) || consumed != 3 {
		t.Errorf("decode: got (%v, %d)", back, consumed)
	}
}

func TestBytesOwnsItsPayload(t *testing.T) {
	raw := []byte{1, 2, 3}
	b := NewBytes(raw)
	raw[0] = 9
	if b[0] != 1 {
		t.Error("NewBytes should copy the input slice")
	}
}
