// Package validation checks request input before any persistence happens and
// reports every violated rule, not just the first.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmployeeInput carries the form fields of an employee create or update
// request.
type EmployeeInput struct {
	Name        string   `validate:"required"`
	Email       string   `validate:"required,email"`
	Mobile      string   `validate:"required,numeric"`
	Designation string   `validate:"required"`
	Gender      string   `validate:"required"`
	Course      []string `validate:"required,min=1,dive,required"`
}

var validate = validator.New()

var employeeMessages = map[string]string{
	"Name":        "Name is required",
	"Email":       "Please include a valid email",
	"Mobile":      "Mobile number is required and must be numeric",
	"Designation": "Designation is required",
	"Gender":      "Gender is required",
	"Course":      "Course is required",
}

// ValidateCreate checks all employee fields and returns the full list of
// violations.
func ValidateCreate(in EmployeeInput) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	seen := make(map[string]bool)
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.StructField()
		// dive failures report the element, e.g. "Course[1]"
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		msg, found := employeeMessages[field]
		if !found {
			msg = fe.Field() + " is invalid"
		}
		if !seen[msg] {
			seen[msg] = true
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// ValidateUpdate checks only the fields that were actually supplied, so a
// partial update does not trip "required" rules for omitted fields.
func ValidateUpdate(in EmployeeInput) []string {
	var msgs []string
	if in.Email != "" {
		if err := validate.Var(in.Email, "email"); err != nil {
			msgs = append(msgs, employeeMessages["Email"])
		}
	}
	if in.Mobile != "" {
		if err := validate.Var(in.Mobile, "numeric"); err != nil {
			msgs = append(msgs, employeeMessages["Mobile"])
		}
	}
	return msgs
}
