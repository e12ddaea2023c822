package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "hotelreserve/internal/adapters/redis"
	"hotelreserve/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	h := domain.Hotel{ID: "h1", Name: "Hilton", City: "CDMX", TotalRooms: 10, ReservedRooms: 3}
	if err := cache.Set(ctx, "hotel:h1", h, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Hotel
	ok, err := cache.Get(ctx, "hotel:h1", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, h)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var got domain.Customer
	ok, err := cache.Get(ctx, "customer:none", &got)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	c := domain.Customer{ID: "c1", Name: "Ana", Email: "ana@example.com"}
	if err := cache.Set(ctx, "customer:c1", c, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Del(ctx, "customer:c1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := cache.Get(ctx, "customer:c1", &got); ok {
		t.Fatal("expected miss after del")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Set(ctx, "hotel:h1", domain.Hotel{ID: "h1"}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var got domain.Hotel
	if ok, _ := cache.Get(ctx, "hotel:h1", &got); ok {
		t.Fatal("expected entry to expire")
	}
}
