package validator

import (
	"errors"
	"fmt"
	"regexp"
	"skyfare/pkg/logger"
	"skyfare/pkg/model"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Row number then column letter, e.g. 1A or 32F.
	seatLabelRegex = regexp.MustCompile(`^[1-9][0-9]?[A-K]$`)
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

type ReservationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReservationValidator(log *logger.Logger) *ReservationValidator {
	v := validator.New()

	if err := v.RegisterValidation("seat_label", validateSeatLabel); err != nil {
		log.Fatal("Failed to register 'seat_label' validator",
			"error", err,
		)
	}

	return &ReservationValidator{
		validate: v,
		logger:   log,
	}
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRegex.MatchString(fl.Field().String())
}

// ValidateCreate checks a reservation request: struct-level constraints
// plus the cross-passenger rules a tag cannot express, such as two
// passengers claiming the same seat on one flight.
func (v *ReservationValidator) ValidateCreate(input *model.CreateReservationInput) error {
	if err := v.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	claimed := make(map[string]int)
	for i, passenger := range input.Passengers {
		seenFlights := make(map[string]bool, len(passenger.Seats))
		for _, seat := range passenger.Seats {
			if seenFlights[seat.FlightID] {
				return ValidationErrors{
					ValidationError{
						Field:   fmt.Sprintf("Passengers[%d].Seats", i),
						Message: fmt.Sprintf("passenger selected two seats on flight %s", seat.FlightID),
					},
				}
			}
			seenFlights[seat.FlightID] = true

			key := seat.FlightID + "/" + seat.Seat
			if prev, taken := claimed[key]; taken {
				return ValidationErrors{
					ValidationError{
						Field:   fmt.Sprintf("Passengers[%d].Seats", i),
						Message: fmt.Sprintf("seat %s on flight %s already selected by passenger %d", seat.Seat, seat.FlightID, prev),
					},
				}
			}
			claimed[key] = i
		}
	}

	return nil
}

func (v *ReservationValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s element(s)", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "seat_label":
			message = fmt.Sprintf("%s must be a seat label like 12C", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
