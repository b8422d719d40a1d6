package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/reciklaza/internal/api"
	"github.com/erazemk/reciklaza/internal/config"
	"github.com/erazemk/reciklaza/internal/metrics"
	"github.com/erazemk/reciklaza/internal/model"
	"github.com/erazemk/reciklaza/internal/notify"
	"github.com/erazemk/reciklaza/internal/slot"
	"github.com/erazemk/reciklaza/internal/store"
)

// flags holds command-line values. Only flags that were given override
// the configuration file.
type flags struct {
	configPath string
	addr       string
	driver     string
	dbPath     string
	logPath    string
	set        map[string]bool
}

func parseFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("reciklaza", flag.ContinueOnError)

	f := &flags{set: make(map[string]bool)}
	fs.StringVar(&f.configPath, "config", "", "")
	fs.StringVar(&f.configPath, "c", "", "")
	fs.StringVar(&f.addr, "addr", "", "")
	fs.StringVar(&f.addr, "a", "", "")
	fs.StringVar(&f.driver, "storage", "", "")
	fs.StringVar(&f.driver, "s", "", "")
	fs.StringVar(&f.dbPath, "db", "", "")
	fs.StringVar(&f.dbPath, "d", "", "")
	fs.StringVar(&f.logPath, "log", "", "")
	fs.StringVar(&f.logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: reciklaza [flags]

Flags:
  -c, -config <path>      YAML configuration file (default: none)
  -a, -addr <host:port>   listen address (default: :8080)
  -s, -storage <driver>   storage driver: memory, file, sqlite, postgres, redis, s3 (default: sqlite)
  -d, -db <path>          file or SQLite path for the item collection (default: reciklaza.sqlite3)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	aliases := map[string]string{"c": "config", "a": "addr", "s": "storage", "d": "db", "l": "log"}
	fs.Visit(func(fl *flag.Flag) {
		name := fl.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		f.set[name] = true
	})
	return f, nil
}

// apply overrides cfg with the flags that were given.
func (f *flags) apply(cfg *config.Config) {
	if f.set["addr"] {
		cfg.Addr = f.addr
	}
	if f.set["storage"] {
		cfg.Storage.Driver = f.driver
	}
	if f.set["db"] {
		cfg.Storage.Path = f.dbPath
	}
	if f.set["log"] {
		cfg.Log = f.logPath
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx := context.Background()

	sl, err := slot.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer sl.Close()
	slog.Info("storage ready", "driver", cfg.Storage.Driver, "key", cfg.Storage.Key)

	var s *store.Store
	m := metrics.New(func() map[model.Status]int {
		return s.CountByStatus()
	})

	notifiers := []notify.Notifier{notify.Log{Logger: slog.Default()}, m}
	var recorder *notify.Recorder
	if cfg.Notices > 0 {
		recorder = notify.NewRecorder(cfg.Notices)
		notifiers = append(notifiers, recorder)
	}

	s = store.New(sl, notify.Multi(notifiers...), store.Options{QR: cfg.QR.Builder()})
	items := s.Load(ctx)
	slog.Info("items loaded", "count", len(items))

	handler := api.LoggingMiddleware(m)(api.NewRouter(s, recorder, m))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	slog.Info("server stopped, closing storage")
	return nil
}
