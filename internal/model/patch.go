package model

import (
	"bytes"
	"encoding/json"
)

// Optional marks a patch field as present or absent. A present field with a
// JSON null value carries the zero value of T.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON is only called for keys present in the document, which is
// what marks the field as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ItemPatch is a shallow update of an item's editable fields. Each set field
// replaces the existing value entirely, nested records included.
type ItemPatch struct {
	Name         Optional[string]        `json:"name"`
	Category     Optional[string]        `json:"category"`
	Measurements Optional[*Measurements] `json:"measurements"`
	Details      Optional[*Details]      `json:"details"`
	Description  Optional[string]        `json:"description"`
	Notes        Optional[string]        `json:"notes"`
	Images       Optional[[]string]      `json:"images"`
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return !p.Name.Set && !p.Category.Set && !p.Measurements.Set && !p.Details.Set &&
		!p.Description.Set && !p.Notes.Set && !p.Images.Set
}

// Apply returns a copy of the item with the patch merged in.
func (it Item) Apply(p ItemPatch) Item {
	out := it.Clone()
	if p.Name.Set {
		out.Name = p.Name.Value
	}
	if p.Category.Set {
		out.Category = p.Category.Value
	}
	if p.Measurements.Set {
		out.Measurements = nil
		if p.Measurements.Value != nil {
			m := p.Measurements.Value.Clone()
			out.Measurements = &m
		}
	}
	if p.Details.Set {
		out.Details = nil
		if p.Details.Value != nil {
			d := p.Details.Value.Clone()
			out.Details = &d
		}
	}
	if p.Description.Set {
		out.Description = p.Description.Value
	}
	if p.Notes.Set {
		out.Notes = p.Notes.Value
	}
	if p.Images.Set {
		out.Images = append([]string(nil), p.Images.Value...)
	}
	return out
}
