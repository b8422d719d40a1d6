// Package slot stores a single serialized value under a named key.
//
// A slot is the persistence boundary of the item store: the whole item
// collection is written as one value and read back as one value. Drivers
// exist for memory, local files, SQLite, Postgres, Redis and S3.
package slot

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmpty is returned by Load when nothing has been saved yet.
var ErrEmpty = errors.New("slot is empty")

// DefaultKey is the slot key used when none is configured.
const DefaultKey = "recycleItems"

// Slot is a named value that is read and overwritten as a whole. Save must
// never leave a partially written value visible to Load.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// Drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

// Drivers lists every supported driver name.
var Drivers = []string{DriverMemory, DriverFile, DriverSQLite, DriverPostgres, DriverRedis, DriverS3}

// Config selects and configures a driver.
type Config struct {
	Driver string   `yaml:"driver"`
	Key    string   `yaml:"key"`
	Path   string   `yaml:"path"` // file, sqlite
	DSN    string   `yaml:"dsn"`  // postgres
	URL    string   `yaml:"url"`  // redis
	S3     S3Config `yaml:"s3"`
}

// Open constructs the slot described by cfg.
func Open(ctx context.Context, cfg Config) (Slot, error) {
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	var (
		s   Slot
		err error
	)
	switch cfg.Driver {
	case DriverMemory:
		s = NewMemory()
	case DriverFile:
		s, err = asSlot(NewFile(cfg.Path))
	case DriverSQLite:
		s, err = asSlot(OpenSQLite(ctx, cfg.Path, key))
	case DriverPostgres:
		s, err = asSlot(OpenPostgres(ctx, cfg.DSN, key))
	case DriverRedis:
		s, err = asSlot(OpenRedis(ctx, cfg.URL, key))
	case DriverS3:
		s, err = asSlot(OpenS3(ctx, cfg.S3, key))
	default:
		return nil, fmt.Errorf("unknown slot driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s slot: %w", cfg.Driver, err)
	}
	return s, nil
}

// asSlot keeps a failed constructor from producing a non-nil Slot holding a
// nil pointer.
func asSlot[T Slot](s T, err error) (Slot, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
