package types

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/Fossilia/eospyo"
	"github.com/Fossilia/eospyo/errors"
)

func TestFromStringCaseInsensitive(t *testing.T) {
	for _, name := range []string{"uint32", "Uint32", "UINT32"} {
		typ, err := FromString(name)
		if err != nil {
			t.Fatalf("FromString(%q): %v", name, err)
		}
		if typ.Name != "uint32" {
			t.Errorf("FromString(%q): got type %q", name, typ.Name)
		}
	}
}

func TestFromStringUnknown(t *testing.T) {
	unknownErr := &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindUnknownType}
	_, err := FromString("float64")
	if !stderrors.Is(err, unknownErr) {
		t.Fatalf("got %v, want unknown-type error", err)
	}
	// The message lists every registered name.
	msg := err.Error()
	for _, name := range RegisteredNames() {
		if !strings.Contains(msg, name) {
			t.Errorf("error message should list %q: %q", name, msg)
		}
	}
}

func TestRegistryConstructAndEncode(t *testing.T) {
	tests := []struct {
		typeName string
		native   any
		wantHex  int // expected encoded length
	}{
		{"bool", true, 1},
		{"int8", int64(-1), 1},
		{"uint8", 200, 1},
		{"uint16", float64(1024), 2},
		{"uint32", int64(1 << 30), 4},
		{"uint64", uint64(1) << 60, 8},
		{"varuint32", 128, 2},
		{"string", "hi", 3},
		{"bytes", []byte{1, 2, 3}, 3},
		{"name", "eosio", 8},
		{"symbol", "4,EOS", 8},
		{"asset", "1.0000 EOS", 16},
		{"unixtimestamp", time.Unix(1000, 0), 4},
	}

	for _, tt := range tests {
		typ, err := FromString(tt.typeName)
		if err != nil {
			t.Fatalf("FromString(%q): %v", tt.typeName, err)
		}
		v, err := typ.New(tt.native)
		if err != nil {
			t.Fatalf("%s.New(%v): %v", tt.typeName, tt.native, err)
		}
		data := eospyo.Encode(v)
		if len(data) != tt.wantHex {
			t.Errorf("%s: encoded %d bytes, want %d", tt.typeName, len(data), tt.wantHex)
		}
		if v.Size() != len(data) {
			t.Errorf("%s: Size() %d != encoded length %d", tt.typeName, v.Size(), len(data))
		}

		back, consumed, err := typ.Decode(data)
		if err != nil {
			t.Fatalf("%s.Decode: %v", tt.typeName, err)
		}
		if consumed != len(data) {
			t.Errorf("%s: consumed %d, want %d", tt.typeName, consumed, len(data))
		}
		if back.Size() != v.Size() {
			t.Errorf("%s: decoded Size() %d, want %d", tt.typeName, back.Size(), v.Size())
		}
	}
}

func TestRegistryRejectsBadNatives(t *testing.T) {
	cases := []struct {
		typeName string
		native   any
	}{
		{"bool", "yes"},
		{"uint8", "200"},
		{"uint8", 1.5},
		{"uint64", int64(-1)},
		{"name", 42},
		{"unixtimestamp", 3.14},
	}
	for _, tt := range cases {
		typ, err := FromString(tt.typeName)
		if err != nil {
			t.Fatalf("FromString(%q): %v", tt.typeName, err)
		}
		if _, err := typ.New(tt.native); err == nil {
			t.Errorf("%s.New(%v): expected error", tt.typeName, tt.native)
		}
	}
}

func TestRegistryTimestampFromString(t *testing.T) {
	typ, _ := FromString("unixtimestamp")
	v, err := typ.New("2021-08-31T12:30:45Z")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts, ok := v.(UnixTimestamp)
	if !ok {
		t.Fatalf("expected UnixTimestamp, got %T", v)
	}
	if ts.Time().Year() != 2021 {
		t.Errorf("got %v", ts.Time())
	}
}
