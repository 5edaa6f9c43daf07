// Package validation binds and validates request payloads.
//
// Request structs implement Validatable. Field rules are declared as
// `validate:"..."` tags and checked with go-playground/validator; a request
// that needs a specific status or message returns a ready-made *errs.HTTPError.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/deppfellow/bakery-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

var validate = newValidator()

// newValidator reports fields by their form (or json) name and registers
// the "decimal" rule for numeric form values.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"form", "json"} {
			name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	if err := v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, ok := ParseDecimal(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct runs the tag rules on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// MissingParameterError reports failed tag rules as a missing parameter
// error with the given message, one field error per failing field.
// Errors that did not come from tag rules are returned unchanged.
func MissingParameterError(err error, message string) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	return errs.NewMissingParameterError(message, fieldErrors(validationErrors)...)
}

var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseDecimal parses a plain base-10 number such as "3.50", "-1" or "2e3".
// Surrounding whitespace is ignored. Hex floats, NaN, infinities and values
// beyond the float64 range are rejected.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// BindAndValidate binds request data into payload and validates it.
//
// An *errs.HTTPError returned by Validate is passed through unchanged so
// request types control their own status and message.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	err := payload.Validate()
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fields := extractValidationError(err)
	if fields == nil {
		return errs.ValidationError(err)
	}
	return errs.NewBadRequestError(msg, true, nil, fields)
}

func bindError(err error) *errs.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errs.NewBadRequestError(fmt.Sprint(he.Message), false, nil, nil)
	}
	return errs.NewBadRequestError(err.Error(), false, nil, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "", nil
	}
	return "Validation failed", fieldErrors(validationErrors)
}

// fieldErrors turns validator failures into client-facing field errors.
func fieldErrors(validationErrors validator.ValidationErrors) []errs.FieldError {
	result := make([]errs.FieldError, 0, len(validationErrors))

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "decimal":
			msg = "must be a number"

		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", fe.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		result = append(result, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return result
}
