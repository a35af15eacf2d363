// Package errors provides coded error types for the node graph editor.
//
// Every failure the editing core can produce carries a machine-readable
// Code. Codes group into three kinds:
//
//   - Structural: a snapshot document could not be reconstructed (unknown
//     type or value-type names, unresolvable ports, malformed records).
//     Reconstruction aborts atomically.
//   - IllegalConnection: a pending connection was refused (occupied input,
//     mismatched value types, cycle). Gesture-level and non-fatal.
//   - Invariant: the catalog or graph model is inconsistent (duplicate port
//     names, dangling connection endpoints). Programmer or data error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTypeMismatch, "%s cannot feed %s", out, in)
//	if errors.Is(err, errors.ErrCodeTypeMismatch) {
//	    // show hint
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes.
const (
	// Structural errors
	ErrCodeUnknownNodeType   Code = "UNKNOWN_NODE_TYPE"
	ErrCodeUnknownValueType  Code = "UNKNOWN_VALUE_TYPE"
	ErrCodeUnknownPort       Code = "UNKNOWN_PORT"
	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"

	// Illegal connection errors
	ErrCodeInputOccupied Code = "INPUT_OCCUPIED"
	ErrCodeTypeMismatch  Code = "TYPE_MISMATCH"
	ErrCodeCycle         Code = "CYCLE"
	ErrCodeNotAnInput    Code = "NOT_AN_INPUT"
	ErrCodeNotAnOutput   Code = "NOT_AN_OUTPUT"
	ErrCodeUnknownNode   Code = "UNKNOWN_NODE"

	// Invariant violations
	ErrCodeDuplicatePort      Code = "DUPLICATE_PORT"
	ErrCodeDuplicateName      Code = "DUPLICATE_NAME"
	ErrCodeDanglingEndpoint   Code = "DANGLING_ENDPOINT"
	ErrCodeChildrenNotAllowed Code = "CHILDREN_NOT_ALLOWED"
)

// Kind is the category a Code belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindStructural
	KindIllegalConnection
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindIllegalConnection:
		return "illegal connection"
	case KindInvariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

var kinds = map[Code]Kind{
	ErrCodeUnknownNodeType:    KindStructural,
	ErrCodeUnknownValueType:   KindStructural,
	ErrCodeUnknownPort:        KindStructural,
	ErrCodeMalformedDocument:  KindStructural,
	ErrCodeInputOccupied:      KindIllegalConnection,
	ErrCodeTypeMismatch:       KindIllegalConnection,
	ErrCodeCycle:              KindIllegalConnection,
	ErrCodeNotAnInput:         KindIllegalConnection,
	ErrCodeNotAnOutput:        KindIllegalConnection,
	ErrCodeUnknownNode:        KindIllegalConnection,
	ErrCodeDuplicatePort:      KindInvariant,
	ErrCodeDuplicateName:      KindInvariant,
	ErrCodeDanglingEndpoint:   KindInvariant,
	ErrCodeChildrenNotAllowed: KindInvariant,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// KindOf returns the category of err's code.
func KindOf(err error) Kind {
	return kinds[GetCode(err)]
}

// Hint returns the short user-facing text for err, suitable for a tooltip.
// Errors without a code fall back to err.Error().
func Hint(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Code {
	case ErrCodeTypeMismatch:
		return "mismatched types: " + e.Message
	case ErrCodeCycle:
		return "would create cycle"
	case ErrCodeInputOccupied:
		return "input already connected"
	default:
		return e.Message
	}
}
