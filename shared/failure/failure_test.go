package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"staybook/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("checkOutDate must be after checkInDate")),
			code:    http.StatusBadRequest,
			message: "checkOutDate must be after checkInDate",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("Cannot update cancelled or completed bookings"),
			code:    http.StatusBadRequest,
			message: "Cannot update cancelled or completed bookings",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("Invalid token type"),
			code:    http.StatusUnauthorized,
			message: "Invalid token type",
		},
		{
			name:    "not found",
			err:     failure.NotFound("Hotel not found"),
			code:    http.StatusNotFound,
			message: "Hotel not found",
		},
		{
			name:    "conflict maps to bad request",
			err:     failure.Conflict("Email already registered"),
			code:    http.StatusBadRequest,
			message: "Email already registered",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("Account is deactivated"),
			code:    http.StatusForbidden,
			message: "Account is deactivated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequestNil(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("Booking not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to cancel booking: %w", failure.BadRequestFromString("test")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := failure.GetCode(tt.input); result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}

			if failure.IsFailure(tt.input) != (tt.expected != http.StatusInternalServerError) {
				t.Errorf("unexpected IsFailure result for %v", tt.input)
			}
		})
	}
}
