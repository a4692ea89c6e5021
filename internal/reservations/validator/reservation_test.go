package validator

import (
	"skyfare/pkg/logger"
	"skyfare/pkg/model"
	"strings"
	"testing"
	"time"
)

const (
	validBasketID = "64b000000000000000000001"
	validFlightID = "64a000000000000000000001"
)

func newTestValidator() *ReservationValidator {
	return NewReservationValidator(logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}))
}

func validPassenger() model.PassengerData {
	return model.PassengerData{
		Type:           model.PassengerAdult,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		DOB:            time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC),
		HandBaggage:    1,
		CheckedBaggage: 1,
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	v := newTestValidator()

	p := validPassenger()
	p.Seats = []model.SeatSelection{{FlightID: validFlightID, Seat: "12C"}}

	err := v.ValidateCreate(&model.CreateReservationInput{
		BasketID:   validBasketID,
		Passengers: []model.PassengerData{p},
	})
	if err != nil {
		t.Errorf("expected valid input, got %v", err)
	}
}

func TestValidateCreate_MissingPassengers(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateCreate(&model.CreateReservationInput{BasketID: validBasketID})
	if err == nil {
		t.Fatal("expected error for missing passengers")
	}
}

func TestValidateCreate_BadSeatLabels(t *testing.T) {
	v := newTestValidator()

	for _, label := range []string{"A12", "0A", "123A", "12L", "12", "c"} {
		p := validPassenger()
		p.Seats = []model.SeatSelection{{FlightID: validFlightID, Seat: label}}

		err := v.ValidateCreate(&model.CreateReservationInput{
			BasketID:   validBasketID,
			Passengers: []model.PassengerData{p},
		})
		if err == nil {
			t.Errorf("label %q: expected error", label)
			continue
		}
		if !strings.Contains(err.Error(), "seat label") {
			t.Errorf("label %q: unexpected message: %v", label, err)
		}
	}
}

func TestValidateCreate_BadPassengerType(t *testing.T) {
	v := newTestValidator()

	p := validPassenger()
	p.Type = "senior"

	err := v.ValidateCreate(&model.CreateReservationInput{
		BasketID:   validBasketID,
		Passengers: []model.PassengerData{p},
	})
	if err == nil {
		t.Fatal("expected error for unknown passenger type")
	}
}

func TestValidateCreate_DuplicateSeatAcrossPassengers(t *testing.T) {
	v := newTestValidator()

	p1 := validPassenger()
	p1.Seats = []model.SeatSelection{{FlightID: validFlightID, Seat: "12C"}}
	p2 := validPassenger()
	p2.FirstName = "Grace"
	p2.Seats = []model.SeatSelection{{FlightID: validFlightID, Seat: "12C"}}

	err := v.ValidateCreate(&model.CreateReservationInput{
		BasketID:   validBasketID,
		Passengers: []model.PassengerData{p1, p2},
	})
	if err == nil {
		t.Fatal("expected error for duplicate seat selection")
	}
	if !strings.Contains(err.Error(), "already selected") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidateCreate_TwoSeatsOnOneFlight(t *testing.T) {
	v := newTestValidator()

	p := validPassenger()
	p.Seats = []model.SeatSelection{
		{FlightID: validFlightID, Seat: "12C"},
		{FlightID: validFlightID, Seat: "12D"},
	}

	err := v.ValidateCreate(&model.CreateReservationInput{
		BasketID:   validBasketID,
		Passengers: []model.PassengerData{p},
	})
	if err == nil {
		t.Fatal("expected error for two seats on one flight")
	}
}

func TestValidateCreate_BaggageCaps(t *testing.T) {
	v := newTestValidator()

	p := validPassenger()
	p.CheckedBaggage = 6

	err := v.ValidateCreate(&model.CreateReservationInput{
		BasketID:   validBasketID,
		Passengers: []model.PassengerData{p},
	})
	if err == nil {
		t.Fatal("expected error for checked baggage above cap")
	}
}
