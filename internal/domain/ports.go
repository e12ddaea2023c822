package domain

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, name, email string) (Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Modify(ctx context.Context, id, name, email string) (Customer, error)
	Delete(ctx context.Context, id string) error
	Display(ctx context.Context, id string) (string, error)
}

type HotelRepository interface {
	Create(ctx context.Context, name, city string, totalRooms int) (Hotel, error)
	Get(ctx context.Context, id string) (Hotel, error)
	List(ctx context.Context) ([]Hotel, error)
	Modify(ctx context.Context, id, name, city string, totalRooms int) (Hotel, error)
	Delete(ctx context.Context, id string) error
	Display(ctx context.Context, id string) (string, error)

	// Room counters. ReserveRoom fails ErrValidation when availability is
	// zero; CancelRoomReservation fails ErrValidation when nothing is held.
	ReserveRoom(ctx context.Context, id string) (Hotel, error)
	CancelRoomReservation(ctx context.Context, id string) (Hotel, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, customerID, hotelID string) (Reservation, error)
	Get(ctx context.Context, id string) (Reservation, error)
	List(ctx context.Context) ([]Reservation, error)
	Cancel(ctx context.Context, id string) error
	Display(ctx context.Context, id string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
