package validator

import (
	"errors"
	"fmt"
	"skyfare/pkg/logger"
	"skyfare/pkg/model"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BasketValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBasketValidator(log *logger.Logger) *BasketValidator {
	return &BasketValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ValidateSelections checks an upload payload: every entry must carry a
// well-formed flight ID and no entry may consist of infants alone. An
// empty payload is valid; uploading it clears the basket.
func (v *BasketValidator) ValidateSelections(selections []model.BasketSelection) error {
	seen := make(map[string]bool, len(selections))
	for i, sel := range selections {
		if err := v.validate.Struct(&sel); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				return v.translateValidationErrors(validationErrs)
			}
			return err
		}

		if seen[sel.FlightID] {
			return ValidationErrors{
				ValidationError{
					Field:   fmt.Sprintf("Flights[%d]", i),
					Message: fmt.Sprintf("flight %s selected more than once", sel.FlightID),
				},
			}
		}
		seen[sel.FlightID] = true

		if sel.SeatCount() == 0 {
			return ValidationErrors{
				ValidationError{
					Field:   fmt.Sprintf("Flights[%d]", i),
					Message: "each selection needs at least one adult or child",
				},
			}
		}
		if sel.Infant > sel.Adult {
			return ValidationErrors{
				ValidationError{
					Field:   fmt.Sprintf("Flights[%d]", i),
					Message: fmt.Sprintf("infant count (%d) cannot exceed adult count (%d)", sel.Infant, sel.Adult),
				},
			}
		}
	}

	return nil
}

func (v *BasketValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
