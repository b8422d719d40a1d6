package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelRouterSplitsByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(newLevelRouter(&stdout, &stderr)).With("component", "test")

	logger.Debug("hidden")
	logger.Info("created")
	logger.Warn("slow")
	logger.Error("failed")

	out, errOut := stdout.String(), stderr.String()
	if strings.Contains(out, "hidden") || strings.Contains(errOut, "hidden") {
		t.Error("debug records should be dropped")
	}
	if !strings.Contains(out, "created") || !strings.Contains(out, "slow") {
		t.Errorf("info and warn should go to stdout, got %q", out)
	}
	if strings.Contains(out, "failed") {
		t.Error("error records should not go to stdout")
	}
	if !strings.Contains(errOut, "failed") || !strings.Contains(errOut, "component=test") {
		t.Errorf("error record missing from stderr: %q", errOut)
	}
}
