// Package config loads the server configuration from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/erazemk/reciklaza/internal/qr"
	"github.com/erazemk/reciklaza/internal/slot"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// Config is the full server configuration.
type Config struct {
	Addr    string      `yaml:"addr"`
	Log     string      `yaml:"log"`
	Storage slot.Config `yaml:"storage"`
	QR      QR          `yaml:"qr"`
	Notices int         `yaml:"notices"`
}

// QR configures the QR image service.
type QR struct {
	BaseURL string `yaml:"base_url"`
	Size    int    `yaml:"size"`
}

// Builder returns the qr.Builder for these settings.
func (q QR) Builder() qr.Builder {
	return qr.Builder{BaseURL: q.BaseURL, Size: q.Size}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr: ":8080",
		Storage: slot.Config{
			Driver: slot.DriverSQLite,
			Key:    slot.DefaultKey,
			Path:   "reciklaza.sqlite3",
		},
		QR: QR{
			BaseURL: qr.DefaultBaseURL,
			Size:    qr.DefaultSize,
		},
		Notices: 50,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configured driver exists and has what it needs.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "addr is empty")
	}
	if c.Notices < 0 {
		problems = append(problems, "notices must not be negative")
	}
	if c.QR.Size < 0 {
		problems = append(problems, "qr.size must not be negative")
	}

	s := c.Storage
	switch {
	case !slices.Contains(slot.Drivers, s.Driver):
		problems = append(problems, fmt.Sprintf("unknown storage driver %q (want one of %s)",
			s.Driver, strings.Join(slot.Drivers, ", ")))
	case (s.Driver == slot.DriverFile || s.Driver == slot.DriverSQLite) && s.Path == "":
		problems = append(problems, "storage.path is required for the "+s.Driver+" driver")
	case s.Driver == slot.DriverPostgres && s.DSN == "":
		problems = append(problems, "storage.dsn is required for the postgres driver")
	case s.Driver == slot.DriverRedis && s.URL == "":
		problems = append(problems, "storage.url is required for the redis driver")
	case s.Driver == slot.DriverS3 && s.S3.Bucket == "":
		problems = append(problems, "storage.s3.bucket is required for the s3 driver")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
