package svm

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator with the student rules registered.
// Field names in error reports follow the JSON tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("dmy_date", validDMYDate); err != nil {
		panic(err)
	}

	return v
}

// dmyDatePattern enforces zero-padded day and month; time.Parse alone would
// accept "5/3/1995".
var dmyDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// validDMYDate accepts strictly formatted DD/MM/YYYY calendar dates.
func validDMYDate(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if !dmyDatePattern.MatchString(v) {
		return false
	}
	_, err := time.Parse(birthDateLayout, v)
	return err == nil
}

// checkStruct runs the validator and converts its output to a
// *ValidationError.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating: %w", err)
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

// ValidateEmail checks the format of a login email address. Credentials are
// not verified anywhere in this system; only the shape of the address is.
func ValidateEmail(email string) error {
	err := validate.Var(email, "required,email")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating email: %w", err)
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: "email", Message: fieldMessage(fe)})
	}
	return ve
}

// fieldMessage renders one failed constraint as a human-readable reason.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	case "dmy_date":
		return "must be a valid date in DD/MM/YYYY format"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed the %s constraint", fe.Tag())
	}
}
