package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is the 400 response body: the first violated rule and the
// JSON name of the field it applies to. Field is empty when the payload could
// not be read at all.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Input is implemented by the insertable entity shapes.
type Input interface {
	Normalize()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse normalizes in and checks it against its declared rules. It returns
// nil when the input is acceptable.
func Parse(in Input) *ValidationError {
	if in == nil {
		return &ValidationError{Message: "request body is required"}
	}
	if rv := reflect.ValueOf(in); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return &ValidationError{Message: "request body is required"}
	}
	in.Normalize()
	return Validate(in)
}

// Validate checks v without modifying it. Violations are reported in field
// declaration order and only the first one is returned.
func Validate(v any) *ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Message: describe(fe), Field: fe.Field()}
	}
	return &ValidationError{Message: "invalid input"}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
