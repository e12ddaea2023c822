package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"hotelreserve/internal/adapters/observability"
	redisad "hotelreserve/internal/adapters/redis"
	"hotelreserve/internal/app"
	"hotelreserve/internal/shared"
	"hotelreserve/internal/storage/jsonfile"
)

const usage = `usage: reservctl <subject> <verb> [flags]

subjects and verbs:
  customer     create|get|modify|delete|show|list
  hotel        create|get|modify|delete|show|list|reserve|release
  reservation  book|get|cancel|show|list
`

func main() {
	cfg, err := shared.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve()

	store := jsonfile.NewStore(log.Logger)
	customers := jsonfile.NewCustomerRepo(store, cfg.CustomersFile, log.Logger)
	hotels := jsonfile.NewHotelRepo(store, cfg.HotelsFile, log.Logger)
	reservations := jsonfile.NewReservationRepo(store, cfg.ReservationsFile, hotels, customers, log.Logger)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	queries := app.NewQueryService(customers, hotels, reservations, cache, cfg.CacheTTL)
	booking := app.NewBookingService(customers, hotels, reservations, cache)

	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	subject, verb, args := os.Args[1], os.Args[2], os.Args[3:]

	var runErr error
	switch subject {
	case "customer":
		runErr = runCustomer(ctx, booking, queries, verb, args)
	case "hotel":
		runErr = runHotel(ctx, booking, queries, verb, args)
	case "reservation":
		runErr = runReservation(ctx, booking, queries, verb, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}

func runCustomer(ctx context.Context, b *app.BookingService, q *app.QueryService, verb string, args []string) error {
	fs := flag.NewFlagSet("customer "+verb, flag.ExitOnError)
	id := fs.String("id", "", "customer id")
	name := fs.String("name", "", "customer name")
	email := fs.String("email", "", "customer email")
	_ = fs.Parse(args)

	switch verb {
	case "create":
		c, err := b.CreateCustomer(ctx, *name, *email)
		if err != nil {
			return err
		}
		fmt.Println(c.Display())
	case "get", "show":
		out, err := q.DescribeCustomer(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "modify":
		c, err := b.ModifyCustomer(ctx, *id, *name, *email)
		if err != nil {
			return err
		}
		fmt.Println(c.Display())
	case "delete":
		return b.DeleteCustomer(ctx, *id)
	case "list":
		cs, err := q.ListCustomers(ctx)
		if err != nil {
			return err
		}
		for _, c := range cs {
			fmt.Println(c.Display())
		}
	default:
		return fmt.Errorf("unknown customer verb %q", verb)
	}
	return nil
}

func runHotel(ctx context.Context, b *app.BookingService, q *app.QueryService, verb string, args []string) error {
	fs := flag.NewFlagSet("hotel "+verb, flag.ExitOnError)
	id := fs.String("id", "", "hotel id")
	name := fs.String("name", "", "hotel name")
	city := fs.String("city", "", "hotel city")
	rooms := fs.Int("rooms", 0, "total rooms")
	_ = fs.Parse(args)

	switch verb {
	case "create":
		h, err := b.CreateHotel(ctx, *name, *city, *rooms)
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
	case "get", "show":
		out, err := q.DescribeHotel(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "modify":
		h, err := b.ModifyHotel(ctx, *id, *name, *city, *rooms)
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
	case "delete":
		return b.DeleteHotel(ctx, *id)
	case "reserve":
		h, err := b.ReserveRoom(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
	case "release":
		h, err := b.ReleaseRoom(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(h.Display())
	case "list":
		hs, err := q.ListHotels(ctx)
		if err != nil {
			return err
		}
		for _, h := range hs {
			fmt.Println(h.Display())
		}
	default:
		return fmt.Errorf("unknown hotel verb %q", verb)
	}
	return nil
}

func runReservation(ctx context.Context, b *app.BookingService, q *app.QueryService, verb string, args []string) error {
	fs := flag.NewFlagSet("reservation "+verb, flag.ExitOnError)
	id := fs.String("id", "", "reservation id")
	customerID := fs.String("customer", "", "customer id")
	hotelID := fs.String("hotel", "", "hotel id")
	_ = fs.Parse(args)

	switch verb {
	case "book":
		res, err := b.Book(ctx, *customerID, *hotelID)
		if err != nil {
			return err
		}
		fmt.Println(res.Display())
	case "get", "show":
		out, err := q.DescribeReservation(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "cancel":
		return b.CancelBooking(ctx, *id)
	case "list":
		rs, err := q.ListReservations(ctx)
		if err != nil {
			return err
		}
		for _, res := range rs {
			fmt.Println(res.Display())
		}
	default:
		return fmt.Errorf("unknown reservation verb %q", verb)
	}
	return nil
}
