package model

// SeatMap is the capacity/layout template for one aircraft type. Grid
// rows hold the valid seat labels; an empty string marks a gap (aisle,
// missing seat) and is never a sellable seat.
type SeatMap struct {
	ID        string     `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	PlaneType string     `json:"plane_type" bson:"plane_type" validate:"required"`
	Grid      [][]string `json:"seat_map" bson:"seat_map" validate:"required,min=1"`
}

// Capacity is the number of distinct sellable seat labels in the grid.
func (m *SeatMap) Capacity() int {
	count := 0
	for _, row := range m.Grid {
		for _, label := range row {
			if label != "" {
				count++
			}
		}
	}
	return count
}

func (m *SeatMap) HasSeat(label string) bool {
	if label == "" {
		return false
	}
	for _, row := range m.Grid {
		for _, l := range row {
			if l == label {
				return true
			}
		}
	}
	return false
}
