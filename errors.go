// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fixturegen

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes generator errors.
type ErrorKind uint8

const (
	// ErrInvalidType indicates a type whose classification and dimensions disagree.
	ErrInvalidType ErrorKind = iota

	// ErrUnknownSignature indicates a request for a built-in overload missing from the catalogue.
	ErrUnknownSignature

	// ErrInfeasibleFixture indicates a combination that violates a hardware or language rule.
	// Enumerators skip such fixtures; it never terminates a generator.
	ErrInfeasibleFixture

	// ErrIOFailure indicates a directory creation or file write failure.
	ErrIOFailure

	// ErrTemplateFailure indicates a template failed to parse or render.
	ErrTemplateFailure

	// ErrInvalidVersion indicates an unknown or malformed language version.
	ErrInvalidVersion

	// ErrInvalidLayout indicates a malformed uniform block description.
	ErrInvalidLayout

	// ErrInvalidConfig indicates a malformed configuration file or table.
	ErrInvalidConfig
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidType:
		return "InvalidType"
	case ErrUnknownSignature:
		return "UnknownSignature"
	case ErrInfeasibleFixture:
		return "InfeasibleFixture"
	case ErrIOFailure:
		return "IOFailure"
	case ErrTemplateFailure:
		return "TemplateFailure"
	case ErrInvalidVersion:
		return "InvalidVersion"
	case ErrInvalidLayout:
		return "InvalidLayout"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// Error is a categorized generator error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an error of the given kind around cause.
func Wrap(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Infeasible returns an ErrInfeasibleFixture error. Enumerators return it
// from fixture builders to have the combination skipped silently.
func Infeasible(format string, args ...any) *Error {
	return NewError(ErrInfeasibleFixture, format, args...)
}
