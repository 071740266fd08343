// Package http provides the HTTP handler layer for the day-trip finder API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/daytrip/day-trip-flight-finder/internal/domain"
)

// SearchDayTripsRequest carries the query parameters of a day-trip search.
// All fields arrive as strings and are validated before conversion.
type SearchDayTripsRequest struct {
	// Departure is the IATA code of the home airport (e.g., "BHX").
	Departure string `query:"departure"`

	// Date is the search day as an ISO-8601 datetime or YYYY-MM-DD date.
	Date string `query:"date"`

	// Destination optionally narrows the search (currently pass-through).
	Destination string `query:"destination"`

	// WeekendOnly restricts a month sweep to Saturdays and Sundays.
	WeekendOnly string `query:"weekendOnly"`

	// Adults is the number of adult travellers (pass-through).
	Adults string `query:"adults"`

	// Children is the number of child travellers (pass-through).
	Children string `query:"children"`

	// IsMonthSelection searches every remaining day of the month.
	IsMonthSelection string `query:"isMonthSelection"`
}

// Validation patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3,}$`)
	dateOnlyPattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for the API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request and returns any validation errors.
func (r *SearchDayTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDeparture(errs)
	r.validateDate(errs)
	r.validateBool(errs, "weekendOnly", r.WeekendOnly)
	r.validateBool(errs, "isMonthSelection", r.IsMonthSelection)
	r.validateCount(errs, "adults", r.Adults)
	r.validateCount(errs, "children", r.Children)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchDayTripsRequest) validateDeparture(errs *ValidationErrors) {
	if r.Departure == "" {
		errs.Add("departure", "departure is required")
		return
	}

	code := strings.ToUpper(r.Departure)
	if !airportCodePattern.MatchString(code) {
		errs.Add("departure", "departure must be an IATA airport code of at least 3 letters")
		return
	}
	r.Departure = code
}

func (r *SearchDayTripsRequest) validateDate(errs *ValidationErrors) {
	if r.Date == "" {
		errs.Add("date", "date is required")
		return
	}
	if _, err := parseDate(r.Date); err != nil {
		errs.Add("date", "date must be an ISO-8601 datetime or YYYY-MM-DD date")
	}
}

func (r *SearchDayTripsRequest) validateBool(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if _, err := strconv.ParseBool(value); err != nil {
		errs.Add(field, field+" must be true or false")
	}
}

func (r *SearchDayTripsRequest) validateCount(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		errs.Add(field, field+" must be a non-negative integer")
	}
}

// ToDomainQuery converts a validated request to a domain search query.
// Call only after Validate has passed.
func (r *SearchDayTripsRequest) ToDomainQuery() domain.SearchQuery {
	date, _ := parseDate(r.Date)
	weekendOnly, _ := strconv.ParseBool(r.WeekendOnly)
	monthSweep, _ := strconv.ParseBool(r.IsMonthSelection)
	adults, _ := strconv.Atoi(r.Adults)
	children, _ := strconv.Atoi(r.Children)

	return domain.SearchQuery{
		Departure:   r.Departure,
		Date:        date,
		Destination: strings.ToUpper(r.Destination),
		MonthSweep:  monthSweep,
		WeekendOnly: weekendOnly,
		Adults:      adults,
		Children:    children,
	}
}

// parseDate accepts an RFC3339 datetime or a bare YYYY-MM-DD date.
func parseDate(value string) (time.Time, error) {
	if dateOnlyPattern.MatchString(value) {
		return time.Parse("2006-01-02", value)
	}
	return time.Parse(time.RFC3339, value)
}
