// Package describe writes human-readable item summaries from structured fields.
package describe

import (
	"strconv"
	"strings"

	"github.com/erazemk/reciklaza/internal/model"
)

// Pending is returned for items with neither details nor measurements.
const Pending = "Item description pending. Please complete item details."

// Item returns the description for an item. The output depends only on the
// item's fields; missing fields are skipped.
func Item(item model.Item) string {
	if item.Details == nil && item.Measurements == nil {
		return Pending
	}

	var d model.Details
	if item.Details != nil {
		d = *item.Details
	}
	var m model.Measurements
	if item.Measurements != nil {
		m = *item.Measurements
	}

	var b strings.Builder

	makeModel := d.Make != "" && d.Model != ""
	if makeModel {
		if d.Year != nil && *d.Year != 0 {
			b.WriteString(strconv.Itoa(*d.Year))
			b.WriteByte(' ')
		}
		b.WriteString(d.Make + " " + d.Model + " ")
	}

	if item.Name != "" {
		if !makeModel {
			b.WriteString(item.Name + " ")
		} else if item.Name != d.Make+" "+d.Model {
			b.WriteString("- " + item.Name + " ")
		}
	}

	if d.Condition != "" {
		b.WriteString("in " + d.Condition + " condition. ")
	} else {
		b.WriteString(". ")
	}

	height, width, depth := value(m.Height), value(m.Width), value(m.Depth)
	if height != 0 || width != 0 || depth != 0 {
		b.WriteString("Dimensions: ")
		if height != 0 {
			b.WriteString("Height: " + number(height) + "″ ")
		}
		if width != 0 {
			b.WriteString("Width: " + number(width) + "″ ")
		}
		if depth != 0 {
			b.WriteString("Depth: " + number(depth) + "″ ")
		}
	}

	if weight := value(m.Weight); weight != 0 {
		b.WriteString("Weight: " + number(weight) + " lbs. ")
	}

	if len(d.Specs) > 0 {
		b.WriteString("\n\nSpecifications: ")
		for _, sp := range d.Specs {
			b.WriteString("\n- " + sp.Key + ": " + sp.Value)
		}
	}

	return b.String()
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// number prints v in its shortest form: 12, 12.5.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
