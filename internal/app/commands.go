package app

import (
	"context"

	"hotelreserve/internal/domain"
)

// BookingService is the write side. Every command delegates to the owning
// repository and then drops the cache keys the mutation touched, so the
// QueryService never serves a stale entity across a write.
type BookingService struct {
	customers    domain.CustomerRepository
	hotels       domain.HotelRepository
	reservations domain.ReservationRepository
	cache        domain.Cache
}

func NewBookingService(c domain.CustomerRepository, h domain.HotelRepository, r domain.ReservationRepository, cache domain.Cache) *BookingService {
	return &BookingService{customers: c, hotels: h, reservations: r, cache: cache}
}

// ---- customers ----

func (s *BookingService) CreateCustomer(ctx context.Context, name, email string) (domain.Customer, error) {
	return s.customers.Create(ctx, name, email)
}

func (s *BookingService) ModifyCustomer(ctx context.Context, id, name, email string) (domain.Customer, error) {
	c, err := s.customers.Modify(ctx, id, name, email)
	if err != nil {
		return domain.Customer{}, err
	}
	s.invalidate(ctx, customerKey(id))
	return c, nil
}

func (s *BookingService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, customerKey(id))
	return nil
}

// ---- hotels ----

func (s *BookingService) CreateHotel(ctx context.Context, name, city string, totalRooms int) (domain.Hotel, error) {
	return s.hotels.Create(ctx, name, city, totalRooms)
}

func (s *BookingService) ModifyHotel(ctx context.Context, id, name, city string, totalRooms int) (domain.Hotel, error) {
	h, err := s.hotels.Modify(ctx, id, name, city, totalRooms)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, hotelKey(id))
	return h, nil
}

func (s *BookingService) DeleteHotel(ctx context.Context, id string) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, hotelKey(id))
	return nil
}

func (s *BookingService) ReserveRoom(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := s.hotels.ReserveRoom(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, hotelKey(id))
	return h, nil
}

func (s *BookingService) ReleaseRoom(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := s.hotels.CancelRoomReservation(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, hotelKey(id))
	return h, nil
}

// ---- reservations ----

func (s *BookingService) Book(ctx context.Context, customerID, hotelID string) (domain.Reservation, error) {
	res, err := s.reservations.Create(ctx, customerID, hotelID)
	if err != nil {
		return domain.Reservation{}, err
	}
	// booking debits the hotel's availability
	s.invalidate(ctx, hotelKey(hotelID))
	return res, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	// resolve the hotel before the record disappears
	res, err := s.reservations.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reservations.Cancel(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, reservationKey(id))
	s.invalidate(ctx, hotelKey(res.HotelID))
	return nil
}

func (s *BookingService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, key)
}
