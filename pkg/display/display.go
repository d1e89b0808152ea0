// Package display formats entity fields for template rendering. Every
// function is total: absent values render as the N/A placeholder instead of
// failing.
package display

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Placeholder marks an absent optional value on a rendered page.
const Placeholder = "N/A"

const dateLayout = "2006-01-02 15:04"

// Amount formats an optional decimal fixed to two places.
func Amount(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return decimal.NewFromFloat(*v).StringFixed(2)
}

// Int formats an optional integer.
func Int(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// Date formats an optional timestamp.
func Date(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format(dateLayout)
}

// Timestamp formats a mandatory timestamp, guarding the zero value.
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(dateLayout)
}

// DateValue formats an optional timestamp for a datetime-local input value,
// returning the empty string when absent.
func DateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02T15:04")
}

// FloatValue formats an optional decimal for an input value, returning the
// empty string when absent.
func FloatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// IntValue formats an optional integer for an input value, returning the
// empty string when absent.
func IntValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
