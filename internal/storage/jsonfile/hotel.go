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
	"hotelreserve/internal/validate"
)

type HotelRepo struct {
	mu     sync.Mutex
	store  *Store
	path   string
	log    zerolog.Logger
	inputs *validate.Inputs
}

func NewHotelRepo(store *Store, path string, log zerolog.Logger) *HotelRepo {
	return &HotelRepo{
		store:  store,
		path:   path,
		log:    log.With().Str("repo", "hotel").Logger(),
		inputs: validate.New(),
	}
}

func (r *HotelRepo) Create(ctx context.Context, name, city string, totalRooms int) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if err := r.inputs.Check(validate.HotelInput{Name: name, City: city, TotalRooms: totalRooms}); err != nil {
		return domain.Hotel{}, err
	}

	h := domain.Hotel{ID: uuid.NewString(), Name: name, City: city, TotalRooms: totalRooms}
	r.saveAll(append(r.loadAll(), h))
	return h, nil
}

func (r *HotelRepo) Get(ctx context.Context, id string) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(id)
}

func (r *HotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll(), nil
}

// Modify updates name, city and capacity in place. ReservedRooms is carried
// over untouched; capacity can never shrink below the rooms already held.
func (r *HotelRepo) Modify(ctx context.Context, id, name, city string, totalRooms int) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if err := r.inputs.Check(validate.HotelInput{Name: name, City: city, TotalRooms: totalRooms}); err != nil {
		return domain.Hotel{}, err
	}

	all := r.loadAll()
	idx := indexOf(all, id, func(h domain.Hotel) string { return h.ID })
	if idx < 0 {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %s", domain.ErrNotFound, id)
	}
	if totalRooms < all[idx].ReservedRooms {
		return domain.Hotel{}, fmt.Errorf("%w: cannot reduce total_rooms to %d below %d reserved",
			domain.ErrValidation, totalRooms, all[idx].ReservedRooms)
	}
	all[idx] = domain.Hotel{
		ID:            id,
		Name:          name,
		City:          city,
		TotalRooms:    totalRooms,
		ReservedRooms: all[idx].ReservedRooms,
	}
	r.saveAll(all)
	return r.find(id)
}

func (r *HotelRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.loadAll()
	idx := indexOf(all, id, func(h domain.Hotel) string { return h.ID })
	if idx < 0 {
		return fmt.Errorf("%w: hotel %s", domain.ErrNotFound, id)
	}
	r.saveAll(append(all[:idx], all[idx+1:]...))
	return nil
}

func (r *HotelRepo) Display(ctx context.Context, id string) (string, error) {
	h, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return h.Display(), nil
}

// ReserveRoom takes one unit of availability.
func (r *HotelRepo) ReserveRoom(ctx context.Context, id string) (domain.Hotel, error) {
	return r.adjustReserved(id, +1)
}

// CancelRoomReservation releases one previously reserved unit.
func (r *HotelRepo) CancelRoomReservation(ctx context.Context, id string) (domain.Hotel, error) {
	return r.adjustReserved(id, -1)
}

func (r *HotelRepo) adjustReserved(id string, delta int) (domain.Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.loadAll()
	idx := indexOf(all, id, func(h domain.Hotel) string { return h.ID })
	if idx < 0 {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %s", domain.ErrNotFound, id)
	}
	h := all[idx]
	if delta > 0 && h.AvailableRooms() == 0 {
		return domain.Hotel{}, fmt.Errorf("%w: no rooms available in hotel %s", domain.ErrValidation, id)
	}
	if delta < 0 && h.ReservedRooms == 0 {
		return domain.Hotel{}, fmt.Errorf("%w: no reserved rooms to release in hotel %s", domain.ErrValidation, id)
	}
	h.ReservedRooms += delta
	all[idx] = h
	r.saveAll(all)
	return h, nil
}

// ---- load/save cycle ----

func (r *HotelRepo) loadAll() []domain.Hotel {
	records := r.store.LoadList(r.path)
	out := make([]domain.Hotel, 0, len(records))
	for _, rec := range records {
		h, ok := r.validateRecord(rec)
		if !ok {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (r *HotelRepo) validateRecord(rec map[string]any) (domain.Hotel, bool) {
	if missing, ok := hasFields(rec, "hotel_id", "name", "city", "total_rooms", "reserved_rooms"); !ok {
		r.log.Warn().Str("missing", missing).Msg("dropping hotel record: missing field")
		observability.ObserveDropped("hotel", "missing_field")
		return domain.Hotel{}, false
	}
	id := strings.TrimSpace(asString(rec["hotel_id"]))
	name := strings.TrimSpace(asString(rec["name"]))
	city := strings.TrimSpace(asString(rec["city"]))
	if id == "" || name == "" || city == "" {
		r.log.Warn().Msg("dropping hotel record: empty field")
		observability.ObserveDropped("hotel", "empty_field")
		return domain.Hotel{}, false
	}
	total, okT := asInt(rec["total_rooms"])
	reserved, okR := asInt(rec["reserved_rooms"])
	if !okT || !okR {
		r.log.Warn().Str("hotel_id", id).Msg("dropping hotel record: non-integer room count")
		observability.ObserveDropped("hotel", "bad_number")
		return domain.Hotel{}, false
	}
	if total <= 0 || reserved < 0 || reserved > total {
		r.log.Warn().Str("hotel_id", id).Int("total", total).Int("reserved", reserved).
			Msg("dropping hotel record: room counters out of range")
		observability.ObserveDropped("hotel", "bad_counters")
		return domain.Hotel{}, false
	}
	return domain.Hotel{ID: id, Name: name, City: city, TotalRooms: total, ReservedRooms: reserved}, true
}

func (r *HotelRepo) saveAll(hotels []domain.Hotel) {
	records := make([]map[string]any, 0, len(hotels))
	for _, h := range hotels {
		records = append(records, map[string]any{
			"hotel_id":       h.ID,
			"name":           h.Name,
			"city":           h.City,
			"total_rooms":    h.TotalRooms,
			"reserved_rooms": h.ReservedRooms,
		})
	}
	r.store.SaveList(r.path, records)
}

func (r *HotelRepo) find(id string) (domain.Hotel, error) {
	for _, h := range r.loadAll() {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("%w: hotel %s", domain.ErrNotFound, id)
}
