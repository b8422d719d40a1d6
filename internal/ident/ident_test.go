package ident

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d ids", id, i)
		}
		seen[id] = true
	}
}

func TestNewIsFixedWidthBase36(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New()
		if len(id) != Length {
			t.Fatalf("expected length %d, got %d (%q)", Length, len(id), id)
		}
		if strings.Trim(id, "0123456789abcdefghijklmnopqrstuvwxyz") != "" {
			t.Fatalf("id %q has non base-36 characters", id)
		}
	}
}

func TestNewSortsByCreation(t *testing.T) {
	prev := New()
	for i := 0; i < 1000; i++ {
		next := New()
		if next <= prev {
			t.Fatalf("expected %q > %q", next, prev)
		}
		prev = next
	}
}

func TestEncode(t *testing.T) {
	if got := Encode(uuid.Nil); got != strings.Repeat("0", Length) {
		t.Errorf("Encode(Nil) = %q", got)
	}
	var max uuid.UUID
	for i := range max {
		max[i] = 0xff
	}
	if got := Encode(max); len(got) != Length {
		t.Errorf("Encode(Max) has length %d", len(got))
	}
}
