package domain_test

import (
	"testing"

	"hotelreserve/internal/domain"
)

func TestAvailableRoomsFloorsAtZero(t *testing.T) {
	cases := []struct {
		total, reserved, want int
	}{
		{10, 0, 10},
		{10, 4, 6},
		{10, 10, 0},
		{5, 6, 0}, // over-committed record still reports zero, never negative
	}
	for _, tc := range cases {
		h := domain.Hotel{TotalRooms: tc.total, ReservedRooms: tc.reserved}
		if got := h.AvailableRooms(); got != tc.want {
			t.Fatalf("AvailableRooms(%d,%d) = %d, want %d", tc.total, tc.reserved, got, tc.want)
		}
	}
}
