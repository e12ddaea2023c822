package jsonfile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotelreserve/internal/adapters/observability"
	"hotelreserve/internal/domain"
)

// ReservationRepo orchestrates the customer and hotel repositories: a
// reservation only comes into existence after the referenced customer and
// hotel are confirmed and a room unit has been debited from the hotel.
type ReservationRepo struct {
	mu        sync.Mutex
	store     *Store
	path      string
	hotels    domain.HotelRepository
	customers domain.CustomerRepository
	log       zerolog.Logger
}

func NewReservationRepo(store *Store, path string, hotels domain.HotelRepository, customers domain.CustomerRepository, log zerolog.Logger) *ReservationRepo {
	return &ReservationRepo{
		store:     store,
		path:      path,
		hotels:    hotels,
		customers: customers,
		log:       log.With().Str("repo", "reservation").Logger(),
	}
}

// Create checks existence first, debits hotel capacity second, and persists
// the reservation last. There is no compensating rollback: a failed final
// write leaves the room debited with no reservation record, which is the
// documented best-effort contract of the store.
func (r *ReservationRepo) Create(ctx context.Context, customerID, hotelID string) (domain.Reservation, error) {
	if _, err := r.customers.Get(ctx, customerID); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := r.hotels.Get(ctx, hotelID); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := r.hotels.ReserveRoom(ctx, hotelID); err != nil {
		return domain.Reservation{}, err
	}

	res := domain.Reservation{ID: uuid.NewString(), CustomerID: customerID, HotelID: hotelID}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveAll(append(r.loadAll(), res))
	return res, nil
}

func (r *ReservationRepo) Get(ctx context.Context, id string) (domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(id)
}

func (r *ReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll(), nil
}

// Cancel releases the hotel room first and rewrites the reservation list
// without the target second. A release failure (hotel gone, counter already
// zero) aborts the cancel and keeps the reservation record.
func (r *ReservationRepo) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.loadAll()
	var target *domain.Reservation
	remaining := make([]domain.Reservation, 0, len(all))
	for _, res := range all {
		if res.ID == id {
			res := res
			target = &res
			continue
		}
		remaining = append(remaining, res)
	}
	if target == nil {
		return fmt.Errorf("%w: reservation %s", domain.ErrNotFound, id)
	}

	if _, err := r.hotels.CancelRoomReservation(ctx, target.HotelID); err != nil {
		return err
	}
	r.saveAll(remaining)
	return nil
}

// Display formats the reservation without re-checking that the referenced
// customer or hotel still exist.
func (r *ReservationRepo) Display(ctx context.Context, id string) (string, error) {
	res, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return res.Display(), nil
}

// ---- load/save cycle ----

func (r *ReservationRepo) loadAll() []domain.Reservation {
	records := r.store.LoadList(r.path)
	out := make([]domain.Reservation, 0, len(records))
	for _, rec := range records {
		res, ok := r.validateRecord(rec)
		if !ok {
			continue
		}
		out = append(out, res)
	}
	return out
}

func (r *ReservationRepo) validateRecord(rec map[string]any) (domain.Reservation, bool) {
	if missing, ok := hasFields(rec, "reservation_id", "customer_id", "hotel_id"); !ok {
		r.log.Warn().Str("missing", missing).Msg("dropping reservation record: missing field")
		observability.ObserveDropped("reservation", "missing_field")
		return domain.Reservation{}, false
	}
	id := strings.TrimSpace(asString(rec["reservation_id"]))
	customerID := strings.TrimSpace(asString(rec["customer_id"]))
	hotelID := strings.TrimSpace(asString(rec["hotel_id"]))
	if id == "" || customerID == "" || hotelID == "" {
		r.log.Warn().Msg("dropping reservation record: empty field")
		observability.ObserveDropped("reservation", "empty_field")
		return domain.Reservation{}, false
	}
	return domain.Reservation{ID: id, CustomerID: customerID, HotelID: hotelID}, true
}

func (r *ReservationRepo) saveAll(reservations []domain.Reservation) {
	records := make([]map[string]any, 0, len(reservations))
	for _, res := range reservations {
		records = append(records, map[string]any{
			"reservation_id": res.ID,
			"customer_id":    res.CustomerID,
			"hotel_id":       res.HotelID,
		})
	}
	r.store.SaveList(r.path, records)
}

func (r *ReservationRepo) find(id string) (domain.Reservation, error) {
	for _, res := range r.loadAll() {
		if res.ID == id {
			return res, nil
		}
	}
	return domain.Reservation{}, fmt.Errorf("%w: reservation %s", domain.ErrNotFound, id)
}
