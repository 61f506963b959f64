package errors

import (
	e "errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return e.As(err, &nf)
}

type duplicateTitle struct {
	title string
}

// NewDuplicateTitle creates the error returned when a title is already taken.
func NewDuplicateTitle(title string) error {
	return duplicateTitle{title}
}

func (d duplicateTitle) Error() string {
	return fmt.Sprintf("duplicate title %q", d.title)
}

// IsDuplicateTitle checks if the given error signals a title collision.
func IsDuplicateTitle(err error) bool {
	var dt duplicateTitle
	return e.As(err, &dt)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	var ve validationError
	return e.As(err, &ve)
}

// ioError marks failures to open, read or write a file.
// The cause is kept so that os.IsNotExist and friends still work via Unwrap.
type ioError struct {
	message string
	cause   error
}

// NewIOError wraps err as an I/O error with the given message.
func NewIOError(err error, msg string, v ...interface{}) error {
	return ioError{fmt.Sprintf(msg, v...), err}
}

func (i ioError) Error() string {
	if i.cause == nil {
		return i.message
	}
	return fmt.Sprintf("%v: %v", i.message, i.cause)
}

func (i ioError) Unwrap() error {
	return i.cause
}

// IsIOError checks if the given error is an I/O error.
func IsIOError(err error) bool {
	var ie ioError
	return e.As(err, &ie)
}

type parseError struct {
	message string
	cause   error
}

// NewParseError wraps err as a parse error for a malformed document.
func NewParseError(err error, msg string, v ...interface{}) error {
	return parseError{fmt.Sprintf(msg, v...), err}
}

func (p parseError) Error() string {
	if p.cause == nil {
		return p.message
	}
	return fmt.Sprintf("%v: %v", p.message, p.cause)
}

func (p parseError) Unwrap() error {
	return p.cause
}

// IsParseError checks if the given error is a parse error.
func IsParseError(err error) bool {
	var pe parseError
	return e.As(err, &pe)
}
