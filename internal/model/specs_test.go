package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSpecsKeepOrder(t *testing.T) {
	in := `{"zeta":"1","alpha":"2","mid":"3"}`

	var s Specs
	if err := json.Unmarshal([]byte(in), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Specs{{"zeta", "1"}, {"alpha", "2"}, {"mid", "3"}}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("expected %v, got %v", want, s)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("expected %s, got %s", in, out)
	}
}

func TestSpecsDuplicateKeyKeepsFirstPosition(t *testing.T) {
	var s Specs
	if err := json.Unmarshal([]byte(`{"a":"1","b":"2","a":"3"}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Specs{{"a", "3"}, {"b", "2"}}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("expected %v, got %v", want, s)
	}
}

func TestSpecsSetAndGet(t *testing.T) {
	var s Specs
	s = s.Set("Voltage", "12V")
	s = s.Set("Amps", "2")
	s = s.Set("Voltage", "24V")

	if len(s) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(s))
	}
	if v, ok := s.Get("Voltage"); !ok || v != "24V" {
		t.Errorf("Get(Voltage) = %q, %v", v, ok)
	}
	if _, ok := s.Get("Watts"); ok {
		t.Error("expected Watts to be missing")
	}
	if s[0].Key != "Voltage" {
		t.Errorf("expected Voltage to stay first, got %q", s[0].Key)
	}
}

func TestSpecsRejectsNonStringValues(t *testing.T) {
	var s Specs
	if err := json.Unmarshal([]byte(`{"a":1}`), &s); err == nil {
		t.Error("expected error for numeric value")
	}
	if err := json.Unmarshal([]byte(`["a"]`), &s); err == nil {
		t.Error("expected error for array")
	}
}

func TestEmptySpecsMarshal(t *testing.T) {
	out, err := json.Marshal(Specs{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "{}" {
		t.Errorf("expected {}, got %s", out)
	}
}

func TestEmptySpecsObjectStaysEmpty(t *testing.T) {
	var s Specs
	if err := json.Unmarshal([]byte(`{}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s == nil || len(s) != 0 {
		t.Errorf("expected empty non-nil specs, got %#v", s)
	}
}
