// Package errors provides structured error types shared by all patternbook
// packages.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across library packages and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - Domain codes: DIVISION_BY_ZERO, WRONG_PIN, INSUFFICIENT_FUNDS, ...
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown shape kind: %s", kind)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidChain, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidShape  Code = "INVALID_SHAPE"
	ErrCodeInvalidAmount Code = "INVALID_AMOUNT"
	ErrCodeInvalidChain  Code = "INVALID_CHAIN"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Calculator domain errors
	ErrCodeDivisionByZero    Code = "DIVISION_BY_ZERO"
	ErrCodeNegativeFactorial Code = "NEGATIVE_FACTORIAL"

	// Account domain errors
	ErrCodeWrongPIN          Code = "WRONG_PIN"
	ErrCodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"

	// Resource not found errors
	ErrCodeDemoNotFound Code = "DEMO_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// InsufficientFundsError carries the amounts involved in a rejected withdrawal.
type InsufficientFundsError struct {
	Requested float64
	Available float64
}

// Error implements the error interface.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %.2f, available %.2f", e.Requested, e.Available)
}

// Code returns the error code for this error type.
func (e *InsufficientFundsError) Code() Code {
	return ErrCodeInsufficientFunds
}
