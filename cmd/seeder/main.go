package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"hotelreserve/internal/adapters/observability"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/shared"
	"hotelreserve/internal/storage/jsonfile"
)

// seedFile is the bulk-load input: hotels and customers to create in one run.
type seedFile struct {
	Hotels []struct {
		Name       string `json:"name"`
		City       string `json:"city"`
		TotalRooms int    `json:"total_rooms"`
	} `json:"hotels"`
	Customers []struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customers"`
}

func main() {
	ctx := context.Background()
	cfg, err := shared.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve()

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seeder starting")

	seed, err := readSeed(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}

	store := jsonfile.NewStore(log.Logger)
	customers := jsonfile.NewCustomerRepo(store, cfg.CustomersFile, log.Logger)
	hotels := jsonfile.NewHotelRepo(store, cfg.HotelsFile, log.Logger)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	limiter := rate.NewLimiter(rate.Limit(cfg.SeedRPS), cfg.SeedRPS)
	var wg sync.WaitGroup

	run := func(kind string, create func(context.Context) error) {
		if err := limiter.Wait(ctx); err != nil {
			log.Fatal().Err(err).Msg("rate limiter wait failed")
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := create(ctx); err != nil {
				log.Warn().Str("kind", kind).Err(err).Msg("seed entry failed")
				return
			}
			log.Info().Str("kind", kind).Msg("seed entry ok")
		}()
	}

	for _, h := range seed.Hotels {
		h := h
		run("hotel", func(ctx context.Context) error {
			_, err := hotels.Create(ctx, h.Name, h.City, h.TotalRooms)
			return err
		})
	}
	for _, c := range seed.Customers {
		c := c
		run("customer", func(ctx context.Context) error {
			_, err := customers.Create(ctx, c.Name, c.Email)
			return err
		})
	}

	wg.Wait()
	log.Info().Int("hotels", len(seed.Hotels)).Int("customers", len(seed.Customers)).Msg("seeding completed")
}

// readSeed surfaces seed-file I/O problems as ErrPersistence; unlike the
// record store, the seeder has nothing sensible to degrade to.
func readSeed(path string) (seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	var s seedFile
	if err := json.Unmarshal(raw, &s); err != nil {
		return seedFile{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return s, nil
}
