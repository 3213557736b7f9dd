package validator

import (
	"cowork/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

type enum interface {
	IsValid() bool
}

// alphaSpace accepts text made of letters and spaces with at least one letter.
func alphaSpace(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	hasLetter := false

	for _, r := range str {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}

	return hasLetter
}

func validEnum(field val.FieldLevel) bool {
	if e, ok := field.Field().Interface().(enum); ok {
		return e.IsValid()
	}

	return false
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("alphaspace", alphaSpace)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("enum", validEnum)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
