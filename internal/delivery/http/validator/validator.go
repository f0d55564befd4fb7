// Package validator adapts go-playground/validator to echo's Validator
// interface. Validation never fails fast: every field violation is
// collected so clients can fix a whole payload in one round trip.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"roster/internal/delivery/http/response"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var phonePattern = regexp.MustCompile(`^\+\d{6,15}$`)

// ValidationError carries all field violations of one rejected payload.
type ValidationError struct {
	Fields []response.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Field+": "+field.Message)
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New constructs the request validator with the custom phone rule and
// JSON-tag field naming.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for a blank tag or nil fn.
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate checks the bound payload and returns a ValidationError listing
// every violation, one entry per failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate payload")
	}

	fields := make([]response.FieldError, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, response.FieldError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}

	return &ValidationError{Fields: fields}
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldLabel(fieldErr.Field()) + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fieldLabel(fieldErr.Field()) + " must be at least " + fieldErr.Param() + " characters long"
	case "phone":
		return `Phone number must start with a "+" and contain 6 to 15 digits`
	default:
		return fieldLabel(fieldErr.Field()) + " is invalid"
	}
}

// fieldLabel turns a JSON field name into the human label used in
// messages: "firstName" becomes "First name".
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
