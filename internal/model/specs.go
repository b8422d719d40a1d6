package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Spec is a single technical attribute.
type Spec struct {
	Key   string
	Value string
}

// Specs is an ordered set of technical attributes. Keys are unique; the
// order is the order in which keys were first added and is kept through
// JSON encoding, where Specs is written as an object.
type Specs []Spec

// Get returns the value stored under key.
func (s Specs) Get(key string) (string, bool) {
	for _, sp := range s {
		if sp.Key == key {
			return sp.Value, true
		}
	}
	return "", false
}

// Set stores value under key. An existing key keeps its position.
func (s Specs) Set(key, value string) Specs {
	for i := range s {
		if s[i].Key == key {
			s[i].Value = value
			return s
		}
	}
	return append(s, Spec{Key: key, Value: value})
}

// IsZero reports whether no specs were ever given. An empty non-nil Specs
// is kept when encoding.
func (s Specs) IsZero() bool {
	return s == nil
}

// MarshalJSON writes the specs as a JSON object in order.
func (s Specs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sp := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sp.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(sp.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string values, keeping document order.
func (s *Specs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding specs: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decoding specs: expected object")
	}

	out := Specs{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding specs: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decoding specs: expected key")
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding spec %q: %w", key, err)
		}
		out = out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding specs: %w", err)
	}

	*s = out
	return nil
}
