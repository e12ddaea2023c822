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

type CustomerRepo struct {
	mu     sync.Mutex
	store  *Store
	path   string
	log    zerolog.Logger
	inputs *validate.Inputs
}

func NewCustomerRepo(store *Store, path string, log zerolog.Logger) *CustomerRepo {
	return &CustomerRepo{
		store:  store,
		path:   path,
		log:    log.With().Str("repo", "customer").Logger(),
		inputs: validate.New(),
	}
}

func (r *CustomerRepo) Create(ctx context.Context, name, email string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := r.inputs.Check(validate.CustomerInput{Name: name, Email: email}); err != nil {
		return domain.Customer{}, err
	}

	c := domain.Customer{ID: uuid.NewString(), Name: name, Email: email}
	r.saveAll(append(r.loadAll(), c))
	return c, nil
}

func (r *CustomerRepo) Get(ctx context.Context, id string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(id)
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll(), nil
}

// Modify replaces the customer record in place, preserving its position.
func (r *CustomerRepo) Modify(ctx context.Context, id, name, email string) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := r.inputs.Check(validate.CustomerInput{Name: name, Email: email}); err != nil {
		return domain.Customer{}, err
	}

	all := r.loadAll()
	idx := indexOf(all, id, func(c domain.Customer) string { return c.ID })
	if idx < 0 {
		return domain.Customer{}, fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
	}
	all[idx] = domain.Customer{ID: id, Name: name, Email: email}
	r.saveAll(all)
	return r.find(id)
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.loadAll()
	idx := indexOf(all, id, func(c domain.Customer) string { return c.ID })
	if idx < 0 {
		return fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
	}
	r.saveAll(append(all[:idx], all[idx+1:]...))
	return nil
}

func (r *CustomerRepo) Display(ctx context.Context, id string) (string, error) {
	c, err := r.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Display(), nil
}

// ---- load/save cycle ----

func (r *CustomerRepo) loadAll() []domain.Customer {
	records := r.store.LoadList(r.path)
	out := make([]domain.Customer, 0, len(records))
	for _, rec := range records {
		c, ok := r.validateRecord(rec)
		if !ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (r *CustomerRepo) validateRecord(rec map[string]any) (domain.Customer, bool) {
	if missing, ok := hasFields(rec, "customer_id", "name", "email"); !ok {
		r.log.Warn().Str("missing", missing).Msg("dropping customer record: missing field")
		observability.ObserveDropped("customer", "missing_field")
		return domain.Customer{}, false
	}
	id := strings.TrimSpace(asString(rec["customer_id"]))
	name := strings.TrimSpace(asString(rec["name"]))
	email := strings.TrimSpace(asString(rec["email"]))
	if id == "" || name == "" || email == "" {
		r.log.Warn().Msg("dropping customer record: empty field")
		observability.ObserveDropped("customer", "empty_field")
		return domain.Customer{}, false
	}
	return domain.Customer{ID: id, Name: name, Email: email}, true
}

func (r *CustomerRepo) saveAll(customers []domain.Customer) {
	records := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		records = append(records, map[string]any{
			"customer_id": c.ID,
			"name":        c.Name,
			"email":       c.Email,
		})
	}
	r.store.SaveList(r.path, records)
}

func (r *CustomerRepo) find(id string) (domain.Customer, error) {
	for _, c := range r.loadAll() {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("%w: customer %s", domain.ErrNotFound, id)
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}
