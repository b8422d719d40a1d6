// Package filter selects items by status and free-text search.
package filter

import (
	"strings"

	"github.com/erazemk/reciklaza/internal/model"
)

// Criteria selects items. Zero fields do not filter.
type Criteria struct {
	Status model.Status
	Search string
}

// Items returns the items matching c, in input order. The input is not modified.
func Items(items []model.Item, c Criteria) []model.Item {
	search := strings.ToLower(c.Search)

	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if c.Status != "" && item.Status != c.Status {
			continue
		}
		if search != "" && !matches(item, search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// matches reports whether the lowercase search text occurs in the item's
// name, make or model.
func matches(item model.Item, search string) bool {
	if contains(item.Name, search) {
		return true
	}
	if item.Details == nil {
		return false
	}
	return contains(item.Details.Make, search) || contains(item.Details.Model, search)
}

func contains(field, search string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), search)
}

// CountByStatus returns the number of items in each status. Every known
// status has an entry.
func CountByStatus(items []model.Item) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses))
	for _, s := range model.Statuses {
		counts[s] = 0
	}
	for _, item := range items {
		counts[item.Status]++
	}
	return counts
}
