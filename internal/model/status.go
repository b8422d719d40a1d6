package model

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle stage of an item.
type Status string

// Item statuses.
const (
	StatusPending Status = "pending"
	StatusScrap   Status = "scrap"
	StatusSell    Status = "sell"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusScrap, StatusSell}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScrap, StatusSell:
		return true
	}
	return false
}

// ParseStatus converts a string to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Label returns the human-readable badge text.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusScrap:
		return "Scrap"
	case StatusSell:
		return "Sell"
	default:
		return string(s)
	}
}

// Color returns the badge classes for the status.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case StatusScrap:
		return "bg-red-100 text-red-800 border-red-200"
	case StatusSell:
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}

// UnmarshalJSON rejects statuses outside the lifecycle.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
