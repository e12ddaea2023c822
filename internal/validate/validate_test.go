package validate_test

import (
	"errors"
	"testing"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/validate"
)

func TestCustomerInput(t *testing.T) {
	v := validate.New()

	ok := []validate.CustomerInput{
		{Name: "Ana", Email: "ana@example.com"},
		{Name: "X", Email: "a@b.c"},
		{Name: "Weird", Email: "dots.only@x.y.z"},
	}
	for _, in := range ok {
		if err := v.Check(in); err != nil {
			t.Fatalf("Check(%+v): unexpected %v", in, err)
		}
	}

	bad := []validate.CustomerInput{
		{Name: "", Email: "ana@example.com"},
		{Name: "Ana", Email: ""},
		{Name: "Ana", Email: "missing-at.com"},
		{Name: "Ana", Email: "missing-dot@com"},
	}
	for _, in := range bad {
		if err := v.Check(in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Check(%+v): expected ErrValidation, got %v", in, err)
		}
	}
}

func TestHotelInput(t *testing.T) {
	v := validate.New()

	if err := v.Check(validate.HotelInput{Name: "Hilton", City: "CDMX", TotalRooms: 1}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	bad := []validate.HotelInput{
		{Name: "", City: "CDMX", TotalRooms: 5},
		{Name: "Hilton", City: "", TotalRooms: 5},
		{Name: "Hilton", City: "CDMX", TotalRooms: 0},
		{Name: "Hilton", City: "CDMX", TotalRooms: -1},
	}
	for _, in := range bad {
		if err := v.Check(in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Check(%+v): expected ErrValidation, got %v", in, err)
		}
	}
}
