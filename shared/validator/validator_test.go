package validator_test

import (
	"cowork/shared/failure"
	"cowork/shared/validator"
	"net/http"
	"strings"
	"testing"
)

type testShift string

func (s testShift) IsValid() bool {
	return s == "morning" || s == "afternoon" || s == "evening"
}

type bookingRequest struct {
	FirstName string    `json:"first_name" validate:"required,alphaspace,max=100"`
	Capacity  int       `json:"capacity"   validate:"gt=0"`
	Shift     testShift `json:"shift"      validate:"required,enum"`
	EventName string    `json:"event_name" validate:"required,max=200"`
}

func validRequest() bookingRequest {
	return bookingRequest{
		FirstName: "Ana Maria",
		Capacity:  8,
		Shift:     "morning",
		EventName: "Kickoff",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *bookingRequest)
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			mutate:      func(_ *bookingRequest) {},
			expectError: false,
		},
		{
			name:        "accented letters are allowed",
			mutate:      func(r *bookingRequest) { r.FirstName = "José Ángel" },
			expectError: false,
		},
		{
			name:        "digits in name",
			mutate:      func(r *bookingRequest) { r.FirstName = "R2D2" },
			expectError: true,
			message:     "FirstName must contain only letters and spaces",
		},
		{
			name:        "only spaces in name",
			mutate:      func(r *bookingRequest) { r.FirstName = "   " },
			expectError: true,
			message:     "FirstName must contain only letters and spaces",
		},
		{
			name:        "zero capacity",
			mutate:      func(r *bookingRequest) { r.Capacity = 0 },
			expectError: true,
			message:     "Capacity must be greater than 0",
		},
		{
			name:        "unknown shift",
			mutate:      func(r *bookingRequest) { r.Shift = "night" },
			expectError: true,
			message:     "Shift has an invalid value",
		},
		{
			name:        "event name too long",
			mutate:      func(r *bookingRequest) { r.EventName = strings.Repeat("a", 201) },
			expectError: true,
			message:     "EventName must be less than or equal to 200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if !tt.expectError {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
			}

			if err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "letters and spaces",
			field:       "Sala Norte",
			tag:         "alphaspace",
			expectError: false,
		},
		{
			name:        "punctuation",
			field:       "Sala-Norte",
			tag:         "alphaspace",
			expectError: true,
		},
		{
			name:        "valid shift",
			field:       testShift("evening"),
			tag:         "enum",
			expectError: false,
		},
		{
			name:        "plain string is not an enum",
			field:       "evening",
			tag:         "enum",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"first_name":"Ana","capacity":4,"shift":"afternoon","event_name":"Retro"}`,
			expectError: false,
		},
		{
			name:        "invalid shift",
			jsonBody:    `{"first_name":"Ana","capacity":4,"shift":"noon","event_name":"Retro"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"first_name":"Ana","capacity":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)

			var data bookingRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
