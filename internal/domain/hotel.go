package domain

import "fmt"

type Hotel struct {
	ID            string
	Name          string
	City          string
	TotalRooms    int
	ReservedRooms int
}

// AvailableRooms is total minus reserved, floored at zero.
func (h Hotel) AvailableRooms() int {
	if n := h.TotalRooms - h.ReservedRooms; n > 0 {
		return n
	}
	return 0
}

func (h Hotel) Display() string {
	return fmt.Sprintf("Hotel[%s] %s (%s) available=%d/%d",
		h.ID, h.Name, h.City, h.AvailableRooms(), h.TotalRooms)
}
