package jsonfile_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/storage/jsonfile"
)

func newCustomerRepo(t *testing.T) (*jsonfile.CustomerRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.json")
	store := jsonfile.NewStore(zerolog.Nop())
	return jsonfile.NewCustomerRepo(store, path, zerolog.Nop()), path
}

func TestCustomer_CreateThenGet(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()

	c, err := repo.Create(ctx, "  Ana Torres  ", " ana@example.com ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if c.Name != "Ana Torres" || c.Email != "ana@example.com" {
		t.Fatalf("inputs not trimmed: %+v", c)
	}

	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != c {
		t.Fatalf("get mismatch: got %+v want %+v", got, c)
	}
}

func TestCustomer_CreateValidation(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()

	cases := []struct{ name, email string }{
		{"", "ana@example.com"},
		{"   ", "ana@example.com"},
		{"Ana", ""},
		{"Ana", "no-at-sign.com"},
		{"Ana", "no-dot@com"},
	}
	for _, tc := range cases {
		if _, err := repo.Create(ctx, tc.name, tc.email); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("create(%q,%q): expected ErrValidation, got %v", tc.name, tc.email, err)
		}
	}

	if cs, _ := repo.List(ctx); len(cs) != 0 {
		t.Fatalf("rejected creates must not persist, got %v", cs)
	}
}

func TestCustomer_GetNotFound(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomer_ModifyReplacesInPlace(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()

	first, _ := repo.Create(ctx, "Ana", "ana@example.com")
	second, _ := repo.Create(ctx, "Mia", "mia@example.com")

	updated, err := repo.Modify(ctx, first.ID, "Ana Maria", "ana.maria@example.com")
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if updated.Name != "Ana Maria" || updated.Email != "ana.maria@example.com" {
		t.Fatalf("modify result: %+v", updated)
	}

	all, _ := repo.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("record position not preserved: %+v", all)
	}
	if all[0].Name != "Ana Maria" {
		t.Fatalf("modification not persisted: %+v", all[0])
	}
}

func TestCustomer_ModifyValidatesAndChecksExistence(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()
	c, _ := repo.Create(ctx, "Ana", "ana@example.com")

	if _, err := repo.Modify(ctx, c.ID, "", "ana@example.com"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := repo.Modify(ctx, "missing", "Ana", "ana@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomer_Delete(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()
	c, _ := repo.Create(ctx, "Ana", "ana@example.com")

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestCustomer_Display(t *testing.T) {
	repo, _ := newCustomerRepo(t)
	ctx := context.Background()
	c, _ := repo.Create(ctx, "Ana", "ana@example.com")

	out, err := repo.Display(ctx, c.ID)
	if err != nil {
		t.Fatalf("display: %v", err)
	}
	want := "Customer[" + c.ID + "] Ana <ana@example.com>"
	if out != want {
		t.Fatalf("display: got %q want %q", out, want)
	}
	if _, err := repo.Display(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomer_LoadSkipsInvalidRecords(t *testing.T) {
	repo, path := newCustomerRepo(t)
	ctx := context.Background()

	writeFile(t, path, `[
		{"customer_id":"c1","name":"Ana","email":"ana@example.com"},
		{"customer_id":"c2","name":"Mia"},
		{"customer_id":"   ","name":"Ghost","email":"g@x.y"},
		{"customer_id":"c3","name":"","email":"z@x.y"},
		{"customer_id":"c4","name":"Zoe","email":"zoe@example.com"}
	]`)

	all, _ := repo.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 valid customers, got %d: %+v", len(all), all)
	}
	if _, err := repo.Get(ctx, "c2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("invalid record must be unreachable: %v", err)
	}
	if _, err := repo.Get(ctx, "c4"); err != nil {
		t.Fatalf("valid record must survive: %v", err)
	}
}
