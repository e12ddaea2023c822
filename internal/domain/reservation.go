package domain

import "fmt"

// Reservation ties one customer to one room unit of a hotel. The room unit
// itself is tracked only on the hotel side (ReservedRooms); creating and
// canceling a reservation must move that counter in step.
type Reservation struct {
	ID         string
	CustomerID string
	HotelID    string
}

func (r Reservation) Display() string {
	return fmt.Sprintf("Reservation[%s] customer=%s hotel=%s", r.ID, r.CustomerID, r.HotelID)
}
