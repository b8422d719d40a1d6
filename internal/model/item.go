package model

import (
	"slices"
	"time"
)

// TimestampLayout is the creation timestamp format (ISO-8601, UTC, milliseconds).
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Item is a single physical object tracked through the recycling workflow.
type Item struct {
	ID           string        `json:"id"`
	QRCode       string        `json:"qrCode"`
	Timestamp    string        `json:"timestamp"`
	Status       Status        `json:"status"`
	Name         string        `json:"name,omitempty"`
	Category     string        `json:"category,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty"`
	Details      *Details      `json:"details,omitempty"`
	Description  string        `json:"description,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Images       []string      `json:"images,omitzero"`
}

// Measurements holds physical dimensions in inches and weight in pounds.
// Any field may be missing.
type Measurements struct {
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Details holds identifying information about an item.
type Details struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         *int   `json:"year,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Condition    string `json:"condition,omitempty"`
	Specs        Specs  `json:"specs,omitzero"`
}

// FormatTimestamp formats t the way item timestamps are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CreatedAt parses the item's timestamp.
func (it Item) CreatedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, it.Timestamp)
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	if it.Measurements != nil {
		m := it.Measurements.Clone()
		out.Measurements = &m
	}
	if it.Details != nil {
		d := it.Details.Clone()
		out.Details = &d
	}
	out.Images = slices.Clone(it.Images)
	return out
}

// Clone returns a deep copy of the measurements.
func (m Measurements) Clone() Measurements {
	return Measurements{
		Height: clonePtr(m.Height),
		Width:  clonePtr(m.Width),
		Depth:  clonePtr(m.Depth),
		Weight: clonePtr(m.Weight),
	}
}

// Clone returns a deep copy of the details.
func (d Details) Clone() Details {
	out := d
	out.Year = clonePtr(d.Year)
	out.Specs = slices.Clone(d.Specs)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. Handy for optional measurement and year fields.
func Ptr[T any](v T) *T {
	return &v
}
