package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Validator collects field-level validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// ExactDigits checks that value is exactly n decimal digits
func (v *Validator) ExactDigits(field, value string, n int) {
	ok := len(value) == n && digitsRegex.MatchString(value)
	v.Check(ok, field, fmt.Sprintf("must be exactly %d digits", n))
}

// Numeric checks that value parses as a number
func (v *Validator) Numeric(field, value string) {
	_, err := strconv.ParseFloat(value, 64)
	v.Check(err == nil, field, "must be a number")
}
