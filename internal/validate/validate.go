// Package validate provides input validation for fabricctl parameters and
// configuration, built on the go-playground/validator library.
//
// VALIDATION COVERAGE:
//   - Endpoints: gateway host and port validation
//   - Names: cluster URI names (fabric:/App/Service) and node names
//   - Structs: tagged parameter structs such as health policies, chaos
//     parameters and secrets, including the custom maxbytes rule
//
// Every failure is returned as a plain error naming the offending field so
// callers can wrap it into a usage error without further formatting.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance with fabricctl's custom rules registered
	validate *validator.Validate
)

func init() {
	validate = validator.New()

	// maxbytes bounds the encoded size of a string, unlike max which counts runes
	if err := validate.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(fmt.Sprintf("register maxbytes validation: %v", err))
	}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// ValidateField validates a single value against a validator tag.
//
// Example: ValidateField(42, "min=0,max=100")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// Struct validates a tagged struct and flattens validator errors into one
// readable message.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describe renders one field error in operator terms.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag())
}
