// Package forms turns submitted form values into typed fields and binding
// failures into per-field messages suitable for re-rendering a form.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors converts a binding error into a map of struct field name to a
// human-readable message. Non-validation errors collapse into a single
// catch-all entry under "_form".
func Errors(err error) map[string]string {
	msgs := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["_form"] = "Submitted form could not be read"
		return msgs
	}

	for _, fe := range verrs {
		msgs[fe.Field()] = message(fe)
	}
	return msgs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is mandatory", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Float parses an optional decimal field. An empty value yields nil; an
// unparseable or negative-violating value records an error under field.
func Float(value, field string, positive bool, errs map[string]string) *float64 {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		errs[field] = fmt.Sprintf("%s must be a number", field)
		return nil
	}
	if positive && f < 0 {
		errs[field] = fmt.Sprintf("%s must not be negative", field)
		return nil
	}
	return &f
}

// Int parses an optional integer field, recording an error under field when
// the value is not an integer or is negative.
func Int(value, field string, errs map[string]string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		errs[field] = fmt.Sprintf("%s must be an integer", field)
		return nil
	}
	if n < 0 {
		errs[field] = fmt.Sprintf("%s must not be negative", field)
		return nil
	}
	return &n
}

// RequiredInt parses a mandatory integer field.
func RequiredInt(value, field string, errs map[string]string) int {
	if value == "" {
		errs[field] = fmt.Sprintf("%s is mandatory", field)
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		errs[field] = fmt.Sprintf("%s must be an integer", field)
		return 0
	}
	return n
}

// dateFormats lists the accepted date input layouts, tried in order.
var dateFormats = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Date parses an optional date field, recording an error under field when the
// value matches none of the accepted layouts.
func Date(value, field string, errs map[string]string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	errs[field] = fmt.Sprintf("%s must be a date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)", field)
	return nil
}
