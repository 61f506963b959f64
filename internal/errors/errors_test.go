package errors

import (
	e "errors"
	"fmt"
	"os"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := e.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}

	wrapped := Wrap(err, "lookup %q", "x")
	if !IsNotFound(wrapped) {
		t.Errorf("wrapped NotFound is not recognized")
	}
}

func TestIsDuplicateTitle(t *testing.T) {
	err := NewDuplicateTitle("Sunset")
	if !IsDuplicateTitle(err) {
		t.Errorf("duplicate title not recognized")
	}
	if IsNotFound(err) || IsValidationError(err) {
		t.Errorf("duplicate title recognized as another kind")
	}
	if err.Error() != `duplicate title "Sunset"` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	_, cause := os.Open("/does/not/exist/at/all")
	err := NewIOError(cause, "open %q", "x")

	if !IsIOError(err) {
		t.Errorf("I/O error not recognized")
	}
	if !os.IsNotExist(e.Unwrap(err)) {
		t.Errorf("cause is lost")
	}
	if !e.Is(err, os.ErrNotExist) {
		t.Errorf("errors.Is does not reach the cause")
	}
	if IsParseError(err) {
		t.Errorf("I/O error recognized as parse error")
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError(fmt.Errorf("unexpected EOF"), "decode %q", "save.json")
	if !IsParseError(fmt.Errorf("load: %w", err)) {
		t.Errorf("wrapped parse error not recognized")
	}
	if err.Error() != `decode "save.json": unexpected EOF` {
		t.Errorf("unexpected message %q", err.Error())
	}
}
