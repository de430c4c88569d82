package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig Phase = "config" // command-line arguments
	PhaseRead   Phase = "read"   // loading the dump
	PhaseParse  Phase = "parse"  // dump text to image
	PhaseEncode Phase = "encode" // image to output text
	PhaseWrite  Phase = "write"  // delivering output
)

// Kind categorizes the error
type Kind string

const (
	KindIO             Kind = "io"
	KindMalformedField Kind = "malformed_field"
	KindOverflow       Kind = "overflow"
	KindEmptyInput     Kind = "empty_input"
	KindInvalidInput   Kind = "invalid_input"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout rout
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string
	Detail string
	Path   string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" || e.Line > 0 {
		b.WriteString(" at ")
		b.WriteString(e.Path)
		if e.Line > 0 {
			if e.Path != "" {
				b.WriteByte(':')
			} else {
				b.WriteString("line ")
			}
			b.WriteString(strconv.Itoa(e.Line))
		}
	}

	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
		if e.Value != nil {
			fmt.Fprintf(&b, " %q", fmt.Sprint(e.Value))
		}
	}

	if e.Detail != "" {
		if e.Field != "" {
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

// Path sets the file the error relates to
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Line sets the 1-based input line number
func (b *Builder) Line(n int) *Builder {
	b.err.Line = n
	return b
}

// Field sets the name of the offending field
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
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

// IO creates an I/O error for the given file
func IO(phase Phase, path string, cause error) *Error {
	return New(phase, KindIO).Path(path).Cause(cause).Build()
}

// MalformedField creates an error for a captured field that cannot be decoded
func MalformedField(line int, field, text string, cause error) *Error {
	return New(PhaseParse, KindMalformedField).
		Line(line).
		Field(field).
		Value(text).
		Detail("not a 32-bit hexadecimal number").
		Cause(cause).
		Build()
}

// Overflow creates an error for an address computation that exceeds 32 bits
func Overflow(phase Phase, line int, base uint32, offset uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Line:   line,
		Value:  base,
		Detail: fmt.Sprintf("address %#x + %d overflows 32 bits", base, offset),
	}
}

// EmptyInput creates an error for an output format that needs at least one entry
func EmptyInput(phase Phase, format string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyInput,
		Detail: fmt.Sprintf("%s output requires at least one entry", format),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported feature error
func Unsupported(phase Phase, feature string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: feature + " is not supported",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
