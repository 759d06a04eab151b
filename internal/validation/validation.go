// Package validation checks trip-creation input at the UI surface. The
// Planner trusts its inputs; all field checks live here.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
)

// Field names used as keys in FieldErrors.
const (
	FieldName        = "name"
	FieldDestination = "destination"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

// FieldErrors maps an offending field to its message. An empty map means the
// input is valid.
type FieldErrors map[string]string

// HasErrors returns true if any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// FormatReport returns a human-readable list of field errors, one per line,
// in a stable order.
func (fe FieldErrors) FormatReport() string {
	if !fe.HasErrors() {
		return ""
	}

	var b strings.Builder
	for _, field := range []string{FieldName, FieldDestination, FieldStartDate, FieldEndDate} {
		if msg, ok := fe[field]; ok {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ValidateTrip checks the four trip-creation fields. Dates are expected in
// YYYY-MM-DD format; the end date must not be before the start date.
func ValidateTrip(name, destination, startDate, endDate string) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(name) == "" {
		errs[FieldName] = "trip name is required"
	}
	if strings.TrimSpace(destination) == "" {
		errs[FieldDestination] = "destination is required"
	}

	var start, end time.Time
	var startOK, endOK bool

	if startDate == "" {
		errs[FieldStartDate] = "start date is required"
	} else if d, err := time.Parse(dateutil.DateFormat, startDate); err != nil {
		errs[FieldStartDate] = fmt.Sprintf("start date must be in YYYY-MM-DD format: %q", startDate)
	} else {
		start, startOK = d, true
	}

	if endDate == "" {
		errs[FieldEndDate] = "end date is required"
	} else if d, err := time.Parse(dateutil.DateFormat, endDate); err != nil {
		errs[FieldEndDate] = fmt.Sprintf("end date must be in YYYY-MM-DD format: %q", endDate)
	} else {
		end, endOK = d, true
	}

	if startOK && endOK && end.Before(start) {
		errs[FieldEndDate] = "end date must be on or after the start date"
	}

	return errs
}

// ValidateDate is a single-field check usable as a huh form validator.
func ValidateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(dateutil.DateFormat, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// ValidateRequired is a single-field check usable as a huh form validator.
func ValidateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", label)
		}
		return nil
	}
}
