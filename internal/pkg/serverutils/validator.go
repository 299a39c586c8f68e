package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request that failed struct validation so the
// error middleware can answer 400 instead of 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			first := errs[0]
			return &ValidationError{
				Message: fmt.Sprintf("field '%s' failed on '%s' rule", first.Field(), first.Tag()),
			}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}
