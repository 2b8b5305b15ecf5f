// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes reflection errors.
type ErrorKind uint8

const (
	// ErrParseFailure indicates the binary is malformed or structurally
	// unusable.
	ErrParseFailure ErrorKind = iota

	// ErrUnknownFormat indicates an interface type with no canonical format.
	ErrUnknownFormat

	// ErrUnknownType indicates a resource with no canonical descriptor kind.
	ErrUnknownType

	// ErrEntryPointNotFound indicates the requested entry point doesn't exist.
	ErrEntryPointNotFound
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrParseFailure:
		return "ParseFailure"
	case ErrUnknownFormat:
		return "UnknownFormat"
	case ErrUnknownType:
		return "UnknownType"
	case ErrEntryPointNotFound:
		return "EntryPointNotFound"
	default:
		return "Unknown"
	}
}

// Error represents a reflection error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err != nil:
		return fmt.Sprintf("shade %s: %v", e.Kind, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("shade %s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("shade %s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new reflection error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func kindOf(err error) (ErrorKind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// IsParseFailure reports whether err is a reflection error of kind
// ErrParseFailure.
func IsParseFailure(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrParseFailure
}

// IsUnknownFormat reports whether err is a reflection error of kind
// ErrUnknownFormat.
func IsUnknownFormat(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrUnknownFormat
}

// IsUnknownType reports whether err is a reflection error of kind
// ErrUnknownType.
func IsUnknownType(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrUnknownType
}

// IsEntryPointNotFound reports whether err is a reflection error of kind
// ErrEntryPointNotFound.
func IsEntryPointNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == ErrEntryPointNotFound
}
