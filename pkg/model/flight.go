package model

import (
	"time"
)

type Flight struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	FlightNumber  string    `json:"flight_number" bson:"flight_number" validate:"required,min=3,max=8"`
	DepDate       time.Time `json:"dep_date" bson:"dep_date" validate:"required"`
	ArrDate       time.Time `json:"arr_date" bson:"arr_date" validate:"required,gtfield=DepDate"`
	DepCode       string    `json:"dep_code" bson:"dep_code" validate:"required,len=3,alpha"`
	ArrCode       string    `json:"arr_code" bson:"arr_code" validate:"required,len=3,alpha"`
	PlaneType     string    `json:"plane_type" bson:"plane_type" validate:"required"`
	Price         float64   `json:"price" bson:"price" validate:"gte=0"`
	Available     int       `json:"available" bson:"available" validate:"gte=0"`
	OccupiedSeats []string  `json:"occupied_seats" bson:"occupied_seats"`
	IsOffer       bool      `json:"is_offer" bson:"is_offer"`
}

// IsSeatOccupied reports whether the given label is present in the
// flight's occupied set. The set is small (bounded by the seat map) so
// a linear scan is fine.
func (f *Flight) IsSeatOccupied(seat string) bool {
	for _, s := range f.OccupiedSeats {
		if s == seat {
			return true
		}
	}
	return false
}

type Airport struct {
	ID      string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Code    string `json:"code" bson:"code" validate:"required,len=3,alpha"`
	Name    string `json:"name" bson:"name" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	Country string `json:"country" bson:"country" validate:"required"`
}
