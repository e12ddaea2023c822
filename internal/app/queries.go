package app

import (
	"context"
	"time"

	"hotelreserve/internal/domain"
)

// QueryService is the read side. It is the only place entities are cached:
// the repositories re-read their backing file on every call, and
// BookingService invalidates the keys touched by each command. Lookups that
// bypass this layer always observe the latest persisted state.
type QueryService struct {
	customers    domain.CustomerRepository
	hotels       domain.HotelRepository
	reservations domain.ReservationRepository
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewQueryService(c domain.CustomerRepository, h domain.HotelRepository, r domain.ReservationRepository, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{customers: c, hotels: h, reservations: r, cache: cache, cacheTTL: ttl}
}

func customerKey(id string) string    { return "customer:" + id }
func hotelKey(id string) string       { return "hotel:" + id }
func reservationKey(id string) string { return "reservation:" + id }

func (s *QueryService) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	var c domain.Customer
	if s.cached(ctx, customerKey(id), &c) {
		return c, nil
	}
	c, err := s.customers.Get(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	s.put(ctx, customerKey(id), c)
	return c, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var h domain.Hotel
	if s.cached(ctx, hotelKey(id), &h) {
		return h, nil
	}
	h, err := s.hotels.Get(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.put(ctx, hotelKey(id), h)
	return h, nil
}

func (s *QueryService) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	var r domain.Reservation
	if s.cached(ctx, reservationKey(id), &r) {
		return r, nil
	}
	r, err := s.reservations.Get(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	s.put(ctx, reservationKey(id), r)
	return r, nil
}

func (s *QueryService) DescribeCustomer(ctx context.Context, id string) (string, error) {
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Display(), nil
}

func (s *QueryService) DescribeHotel(ctx context.Context, id string) (string, error) {
	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return "", err
	}
	return h.Display(), nil
}

// DescribeReservation formats from the reservation record alone; the
// referenced customer and hotel are not re-checked and may be gone.
func (s *QueryService) DescribeReservation(ctx context.Context, id string) (string, error) {
	r, err := s.GetReservation(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Display(), nil
}

// Lists are never cached; they pass straight through to the repositories.

func (s *QueryService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *QueryService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *QueryService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *QueryService) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *QueryService) put(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}
