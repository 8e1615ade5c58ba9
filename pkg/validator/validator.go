package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/helpdeskhq/portal-core/internal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag-based validation and converts failures into the
// application's structured validation error.
func Struct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return internal.NewInternalError("validation failed", err)
	}

	details := internal.ValidationErrors{}
	for _, fe := range fieldErrors {
		details.Errors = append(details.Errors, internal.ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Code:    string(internal.ErrCodeValidationFailed),
		})
	}

	appErr := internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed)
	return appErr.WithDetails(details)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s items or characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
