package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // value construction
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseDecode   Phase = "decode"   // bytes to value
	PhaseParse    Phase = "parse"    // textual form parsing
	PhaseLoad     Phase = "load"     // file and schema loading
)

// Kind categorizes the error
type Kind string

const (
	KindRange       Kind = "range"        // numeric value outside representable domain
	KindEncoding    Kind = "encoding"     // text outside the single-byte UTF-8 assumption
	KindFormat      Kind = "format"       // malformed composite textual syntax
	KindPattern     Kind = "pattern"      // string fails a required character-class pattern
	KindSchema      Kind = "schema"       // ABI input with unknown keys or missing sections
	KindUnknownType Kind = "unknown_type" // type-registry lookup failure
	KindTruncated   Kind = "truncated"    // decode input shorter than the encoding requires
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string // chain type name, e.g. "uint32", "asset"
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the chain type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Range creates an out-of-range error for a numeric value
func Range(typeName string, value, lo, hi any) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindRange,
		Type:   typeName,
		Value:  value,
		Detail: fmt.Sprintf("value %v outside [%v, %v]", value, lo, hi),
	}
}

// Encoding creates an error for text outside the single-byte UTF-8 assumption
func Encoding(typeName, text string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindEncoding,
		Type:   typeName,
		Value:  text,
		Detail: fmt.Sprintf("input %q contains a multi-byte UTF-8 character; the wire format packs one byte per character", text),
	}
}

// Format creates a malformed-syntax error
func Format(typeName string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindFormat,
		Type:   typeName,
		Value:  value,
		Detail: detail,
	}
}

// Pattern creates a character-class pattern failure error
func Pattern(typeName, value, pattern string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindPattern,
		Type:   typeName,
		Value:  value,
		Detail: fmt.Sprintf("input %q does not match %s", value, pattern),
	}
}

// Schema creates an ABI schema error
func Schema(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindSchema,
		Type:   "abi",
		Detail: detail,
		Cause:  cause,
	}
}

// UnknownType creates a type-registry lookup failure listing all known names
func UnknownType(name string, known []string) *Error {
	names := make([]string, len(known))
	copy(names, known)
	sort.Strings(names)
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindUnknownType,
		Value:  name,
		Detail: fmt.Sprintf("type %q not found; available types: %s", name, strings.Join(names, ", ")),
	}
}

// Truncated creates a decode error for input shorter than the encoding requires
func Truncated(typeName string, cause error) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindTruncated,
		Type:  typeName,
		Cause: cause,
	}
}
