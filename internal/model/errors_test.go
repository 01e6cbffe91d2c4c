package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Field: FieldYear, Err: ErrBadYear})

	if !errors.Is(err, ErrBadYear) {
		t.Error("Expected ValidationError to unwrap to ErrBadYear")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != FieldYear {
		t.Errorf("Expected a year ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "year") {
		t.Errorf("Expected message to name the field, got %q", err.Error())
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&PersistenceError{Op: "insert", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("Expected PersistenceError to unwrap to its cause")
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Error("PersistenceError must not be reported as validation")
	}
	if err.Error() != "insert failed: connection refused" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
