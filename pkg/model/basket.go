package model

import (
	"time"
)

// BasketFlight is one selected-flight entry inside a basket. UnitPrice
// is the fare snapshot taken when the selection was made.
type BasketFlight struct {
	FlightID  string  `json:"flight_id" bson:"flight_id" validate:"required,mongodb"`
	Adult     int     `json:"adult" bson:"adult" validate:"gte=0"`
	Child     int     `json:"child" bson:"child" validate:"gte=0"`
	Infant    int     `json:"infant" bson:"infant" validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price" validate:"gte=0"`
}

// SeatCount is how many availability-ledger seats this entry holds.
// Infants travel on a lap and never consume a counter seat.
func (f *BasketFlight) SeatCount() int {
	return f.Adult + f.Child
}

type Basket struct {
	ID         string         `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UserID     string         `json:"user_id" bson:"user_id" validate:"required,mongodb"`
	Flights    []BasketFlight `json:"flights" bson:"flights" validate:"dive"`
	ExpiryTime time.Time      `json:"expiry_time" bson:"expiry_time" validate:"required"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at" validate:"omitempty"`
}

func (b *Basket) Expired(now time.Time) bool {
	return b.ExpiryTime.Before(now)
}

// BasketSelection is the caller-supplied shape of one upload entry.
type BasketSelection struct {
	FlightID string `json:"flight_id" validate:"required,mongodb"`
	Adult    int    `json:"adult" validate:"gte=0,lte=9"`
	Child    int    `json:"child" validate:"gte=0,lte=9"`
	Infant   int    `json:"infant" validate:"gte=0,lte=9"`
}

func (s *BasketSelection) SeatCount() int {
	return s.Adult + s.Child
}
