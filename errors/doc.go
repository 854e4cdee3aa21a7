// Package errors provides structured error types for the codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: chain type name, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindRange).
//		Type("uint8").
//		Value(300).
//		Detail("value 300 outside [0, 255]").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Range("uint8", 300, 0, 255)
//	err := errors.Pattern("symbol", "ABCDEFGH", "^[A-Z]{1,7}$")
//
// All errors implement the standard error interface and support errors.Is/As.
// Every failure in this library is a deterministic validation or decode
// failure; there is nothing to retry.
package errors
