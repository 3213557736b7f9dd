package failure_test

import (
	"cowork/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "shift already booked",
	}

	if f.Error() != "shift already booked" {
		t.Errorf("expected error message to be 'shift already booked', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestCodedConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("event name is required"),
			code:    http.StatusBadRequest,
			message: "event name is required",
		},
		{
			name:    "unprocessable",
			err:     failure.Unprocessable("date too soon"),
			code:    http.StatusUnprocessableEntity,
			message: "date too soon",
		},
		{
			name:    "not found",
			err:     failure.NotFound("folio not found"),
			code:    http.StatusNotFound,
			message: "folio not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("shift already booked"),
			code:    http.StatusConflict,
			message: "shift already booked",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestStorage(t *testing.T) {
	driverErr := errors.New("connection reset by peer")

	err := failure.Storage("get reservations", driverErr)

	if !errors.Is(err, failure.ErrStorage) {
		t.Errorf("expected error to match ErrStorage, got %v", err)
	}

	if !errors.Is(err, driverErr) {
		t.Errorf("expected error to keep the driver error, got %v", err)
	}

	if failure.GetCode(err) != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, failure.GetCode(err))
	}

	if failure.Storage("noop", nil) != nil {
		t.Error("expected nil for nil error")
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
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("create reservation: %w", failure.Conflict("taken")),
			expected: http.StatusConflict,
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
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
