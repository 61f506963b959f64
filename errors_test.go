package gallery

import (
	"errors"
	"fmt"
	"testing"

	ierrors "github.com/akeil/gallery/internal/errors"
)

func TestErrorKinds(t *testing.T) {
	plain := errors.New("some error")
	if IsNotFound(plain) || IsDuplicateTitle(plain) || IsValidationError(plain) || IsIOError(plain) || IsParseError(plain) {
		t.Errorf("plain error is wrongly recognized as a custom kind")
	}

	if !IsNotFound(ierrors.NewNotFound("no %v", "x")) {
		t.Errorf("not found error is not recognized")
	}
	if !IsDuplicateTitle(ierrors.NewDuplicateTitle("x")) {
		t.Errorf("duplicate title error is not recognized")
	}
	if !IsValidationError(ierrors.NewValidationError("bad")) {
		t.Errorf("validation error is not recognized")
	}
	if !IsIOError(ierrors.NewIOError(plain, "read")) {
		t.Errorf("io error is not recognized")
	}
	if !IsParseError(ierrors.NewParseError(plain, "parse")) {
		t.Errorf("parse error is not recognized")
	}
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", ierrors.NewParseError(ierrors.NewDuplicateTitle("Sunset"), "invalid gallery"))

	if !IsParseError(err) {
		t.Errorf("wrapped parse error is not recognized")
	}
	if !IsDuplicateTitle(err) {
		t.Errorf("cause of parse error is not recognized")
	}
}
