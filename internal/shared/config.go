package shared

import (
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" env-default:"prod"`
	DataDir string `env:"DATA_DIR" env-default:"data"`

	// Per-entity file overrides; default to <DataDir>/<entity>.json.
	CustomersFile    string `env:"CUSTOMERS_FILE"`
	HotelsFile       string `env:"HOTELS_FILE"`
	ReservationsFile string `env:"RESERVATIONS_FILE"`

	RedisAddr string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" env-default:"15m"`

	MetricsAddr string `env:"METRICS_ADDR"`

	SeedFile    string `env:"SEED_FILE" env-default:"seed.json"`
	SeedWorkers int    `env:"SEED_WORKERS" env-default:"8"`
	SeedRPS     int    `env:"SEED_RPS" env-default:"50"`
}

func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, err
	}
	if c.CustomersFile == "" {
		c.CustomersFile = filepath.Join(c.DataDir, "customers.json")
	}
	if c.HotelsFile == "" {
		c.HotelsFile = filepath.Join(c.DataDir, "hotels.json")
	}
	if c.ReservationsFile == "" {
		c.ReservationsFile = filepath.Join(c.DataDir, "reservations.json")
	}
	return c, nil
}
