package model

import (
	"time"
)

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

// OccupiesSeat reports whether this passenger type consumes a seat in
// the availability counter. Infants never do, even when they hold a
// seat label.
func (t PassengerType) OccupiesSeat() bool {
	return t == PassengerAdult || t == PassengerChild
}

type Passenger struct {
	Type           PassengerType `json:"type" bson:"type" validate:"required,oneof=adult child infant"`
	FirstName      string        `json:"first_name" bson:"first_name" validate:"required,min=1,max=60"`
	LastName       string        `json:"last_name" bson:"last_name" validate:"required,min=1,max=60"`
	DOB            time.Time     `json:"dob" bson:"dob" validate:"required"`
	HandBaggage    int           `json:"hand_baggage" bson:"hand_baggage" validate:"gte=0,lte=2"`
	CheckedBaggage int           `json:"checked_baggage" bson:"checked_baggage" validate:"gte=0,lte=5"`
	Seat           string        `json:"seat" bson:"seat"`
	IsCheckedIn    bool          `json:"is_checked_in" bson:"is_checked_in"`
}

// ReservedFlight snapshots one basket flight at reservation time: the
// fare it was sold at and the passengers travelling on it.
type ReservedFlight struct {
	FlightID   string      `json:"flight_id" bson:"flight_id" validate:"required,mongodb"`
	Price      float64     `json:"price" bson:"price" validate:"gte=0"`
	Passengers []Passenger `json:"passengers" bson:"passengers" validate:"dive"`
}

// SeatPassengerCount is the number of passengers on this flight that
// hold an availability-counter seat.
func (f *ReservedFlight) SeatPassengerCount() int {
	n := 0
	for _, p := range f.Passengers {
		if p.Type.OccupiesSeat() {
			n++
		}
	}
	return n
}

type Reservation struct {
	ID                string           `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ReservationNumber string           `json:"reservation_number" bson:"reservation_number" validate:"required,len=6"`
	UserID            string           `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	ReservationDate   time.Time        `json:"reservation_date" bson:"reservation_date" validate:"required"`
	Flights           []ReservedFlight `json:"flights" bson:"flights" validate:"required,min=1,dive"`
	TotalPrice        float64          `json:"total_price" bson:"total_price" validate:"gte=0"`
	IsConfirmed       bool             `json:"is_confirmed" bson:"is_confirmed"`
}

// SeatSelection assigns a seat label to one flight of the journey.
type SeatSelection struct {
	FlightID string `json:"flight_id" validate:"required,mongodb"`
	Seat     string `json:"seat" validate:"required,seat_label"`
}

// PassengerData is the caller-supplied shape of one passenger in a
// reservation request.
type PassengerData struct {
	Type           PassengerType   `json:"type" validate:"required,oneof=adult child infant"`
	FirstName      string          `json:"first_name" validate:"required,min=1,max=60"`
	LastName       string          `json:"last_name" validate:"required,min=1,max=60"`
	DOB            time.Time       `json:"dob" validate:"required"`
	HandBaggage    int             `json:"hand_baggage" validate:"gte=0,lte=2"`
	CheckedBaggage int             `json:"checked_baggage" validate:"gte=0,lte=5"`
	Seats          []SeatSelection `json:"seats" validate:"dive"`
}

// SeatFor returns the seat label this passenger selected on the given
// flight, or "" when none was selected.
func (p *PassengerData) SeatFor(flightID string) string {
	for _, s := range p.Seats {
		if s.FlightID == flightID {
			return s.Seat
		}
	}
	return ""
}

type CreateReservationInput struct {
	BasketID   string          `json:"basket_id" validate:"required,mongodb"`
	Passengers []PassengerData `json:"passengers" validate:"required,min=1,dive"`
}
