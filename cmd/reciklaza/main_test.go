package main

import (
	"testing"

	"github.com/erazemk/reciklaza/internal/config"
	"github.com/erazemk/reciklaza/internal/slot"
)

func TestFlagsOverrideConfig(t *testing.T) {
	f, err := parseFlags([]string{"-a", ":9000", "-storage", "file", "-d", "items.json"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	cfg := config.Default()
	cfg.Log = "from-file.log"
	f.apply(&cfg)

	if cfg.Addr != ":9000" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.Storage.Driver != slot.DriverFile || cfg.Storage.Path != "items.json" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Log != "from-file.log" {
		t.Errorf("unset flag overrode log: %q", cfg.Log)
	}
}

func TestFlagsRejectArguments(t *testing.T) {
	if _, err := parseFlags([]string{"serve"}); err == nil {
		t.Error("expected error for positional argument")
	}
}
