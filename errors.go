package gallery

import (
	"github.com/akeil/gallery/internal/errors"
)

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsDuplicateTitle checks if an operation failed because a title is taken.
func IsDuplicateTitle(err error) bool {
	return errors.IsDuplicateTitle(err)
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	return errors.IsValidationError(err)
}

// IsIOError checks if a file could not be opened, read or written.
func IsIOError(err error) bool {
	return errors.IsIOError(err)
}

// IsParseError checks if a persisted document was malformed.
func IsParseError(err error) bool {
	return errors.IsParseError(err)
}
