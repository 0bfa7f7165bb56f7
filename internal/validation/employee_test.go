package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() EmployeeInput {
	return EmployeeInput{
		Name:        "John Doe",
		Email:       "john@example.com",
		Mobile:      "9876543210",
		Designation: "Manager",
		Gender:      "Male",
		Course:      []string{"MCA"},
	}
}

func TestValidateCreatePasses(t *testing.T) {
	assert.Empty(t, ValidateCreate(validInput()))
}

func TestValidateCreateReportsAllViolations(t *testing.T) {
	msgs := ValidateCreate(EmployeeInput{})
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Please include a valid email",
		"Mobile number is required and must be numeric",
		"Designation is required",
		"Gender is required",
		"Course is required",
	}, msgs)
}

func TestValidateCreateRejectsBadEmail(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	msgs := ValidateCreate(in)
	assert.Equal(t, []string{"Please include a valid email"}, msgs)
}

func TestValidateCreateRejectsNonNumericMobile(t *testing.T) {
	in := validInput()
	in.Mobile = "98765abc"
	msgs := ValidateCreate(in)
	assert.Equal(t, []string{"Mobile number is required and must be numeric"}, msgs)
}

func TestValidateCreateRejectsEmptyCourse(t *testing.T) {
	in := validInput()
	in.Course = nil
	msgs := ValidateCreate(in)
	assert.Equal(t, []string{"Course is required"}, msgs)

	in.Course = []string{""}
	msgs = ValidateCreate(in)
	assert.Equal(t, []string{"Course is required"}, msgs)
}

func TestValidateUpdateChecksOnlySuppliedFields(t *testing.T) {
	assert.Empty(t, ValidateUpdate(EmployeeInput{}))
	assert.Empty(t, ValidateUpdate(EmployeeInput{Name: "Jane"}))
	assert.Empty(t, ValidateUpdate(EmployeeInput{Email: "jane@example.com", Mobile: "12345"}))

	msgs := ValidateUpdate(EmployeeInput{Email: "nope", Mobile: "12a45"})
	assert.ElementsMatch(t, []string{
		"Please include a valid email",
		"Mobile number is required and must be numeric",
	}, msgs)
}
