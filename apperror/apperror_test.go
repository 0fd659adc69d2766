package apperror

import (
	"errors"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("user", 42), ErrNotFound, true},
		{"ValidationFailed wraps ErrValidation", ValidationFailed("weight_kg", "weight must be positive"), ErrValidation, true},
		{"Conflict wraps ErrConflict", Conflict("user", "email"), ErrConflict, true},
		{"StorageUnavailable wraps ErrStorageUnavailable", StorageUnavailable(errors.New("dial tcp: refused")), ErrStorageUnavailable, true},
		{"NotFound does not match ErrConflict", NotFound("goal", 7), ErrConflict, false},
		{"Conflict does not match ErrNotFound", Conflict("exercise type", "name"), ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{"NotFound includes resource and id", NotFound("user", 42), "user not found with id 42"},
		{"ValidationFailed uses custom message", ValidationFailed("weight_kg", "weight must be positive"), "weight must be positive"},
		{"Conflict names the field", Conflict("user", "username"), "user with this username already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestValidationFailedField(t *testing.T) {
	err := ValidationFailed("email", "email is required")
	if err.Field != "email" {
		t.Errorf("Field = %q, want %q", err.Field, "email")
	}
}
