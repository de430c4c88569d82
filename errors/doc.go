// Package errors provides structured error types for the rout tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the input line, field name, offending value and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindMalformedField).
//		Line(12).
//		Field("address").
//		Value("1FFFFFFFF").
//		Detail("does not fit in 32 bits").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IO(errors.PhaseRead, path, cause)
//	err := errors.EmptyInput(errors.PhaseEncode, "json")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
