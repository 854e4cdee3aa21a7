package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Phase:  PhaseValidate,
		Kind:   KindRange,
		Type:   "uint8",
		Detail: "value 300 outside [0, 255]",
	}
	got := err.Error()
	want := "[validate] range: type uint8 - value 300 outside [0, 255]"
	if got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}
}

func TestErrorStringNoType(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Detail: "need 4 bytes",
	}
	got := err.Error()
	want := "[decode] truncated: need 4 bytes"
	if got != want {
		t.Errorf("Error(): got %q, want %q", got, want)
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := stderrors.New("inner")
	err := &Error{Phase: PhaseLoad, Kind: KindSchema, Cause: cause}
	if !strings.Contains(err.Error(), "caused by: inner") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should match the cause through Unwrap")
	}
}

func TestErrorIs(t *testing.T) {
	a := Range("uint8", 300, 0, 255)
	b := Range("uint16", 70000, 0, 65535)
	if !stderrors.Is(a, b) {
		t.Error("errors with same Phase and Kind should match")
	}

	c := Pattern("name", "XYZ", "^[.a-z1-5]*$")
	if stderrors.Is(a, c) {
		t.Error("errors with different Kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseParse, KindFormat).
		Type("asset").
		Value("1. WAX").
		Detail("decimal point with no fractional digits").
		Build()

	if err.Phase != PhaseParse {
		t.Errorf("Phase: got %q, want %q", err.Phase, PhaseParse)
	}
	if err.Kind != KindFormat {
		t.Errorf("Kind: got %q, want %q", err.Kind, KindFormat)
	}
	if err.Type != "asset" {
		t.Errorf("Type: got %q, want %q", err.Type, "asset")
	}
	if err.Value != "1. WAX" {
		t.Errorf("Value: got %v, want %q", err.Value, "1. WAX")
	}
}

func TestBuilderDetailFormatting(t *testing.T) {
	err := New(PhaseValidate, KindRange).Detail("value %d exceeds %d", 21, 16).Build()
	if err.Detail != "value 21 exceeds 16" {
		t.Errorf("Detail: got %q", err.Detail)
	}
}

func TestUnknownTypeListsNames(t *testing.T) {
	err := UnknownType("float", []string{"uint8", "asset", "name"})
	msg := err.Error()
	// Names are sorted for stable messages.
	if !strings.Contains(msg, "asset, name, uint8") {
		t.Errorf("expected sorted name list in %q", msg)
	}
	if !strings.Contains(msg, `"float"`) {
		t.Errorf("expected offending name in %q", msg)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err       *Error
		wantPhase Phase
		wantKind  Kind
	}{
		{Range("uint32", int64(-1), 0, uint64(1)<<32-1), PhaseValidate, KindRange},
		{Encoding("string", "café"), PhaseValidate, KindEncoding},
		{Format("asset", "1 2 WAX", "exactly one space required"), PhaseParse, KindFormat},
		{Pattern("symbol", "waxp", "^[A-Z]{1,7}$"), PhaseValidate, KindPattern},
		{Schema("unknown key \"extras\"", nil), PhaseLoad, KindSchema},
		{UnknownType("float", nil), PhaseValidate, KindUnknownType},
		{Truncated("uint64", stderrors.New("eof")), PhaseDecode, KindTruncated},
	}

	for _, tt := range tests {
		if tt.err.Phase != tt.wantPhase {
			t.Errorf("%v: Phase got %q, want %q", tt.err.Kind, tt.err.Phase, tt.wantPhase)
		}
		if tt.err.Kind != tt.wantKind {
			t.Errorf("Kind got %q, want %q", tt.err.Kind, tt.wantKind)
		}
	}
}
