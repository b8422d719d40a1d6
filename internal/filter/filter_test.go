package filter

import (
	"reflect"
	"testing"

	"github.com/erazemk/reciklaza/internal/model"
)

func ids(items []model.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "1", Status: model.StatusSell, Name: "Drill", Details: &model.Details{}},
		{ID: "2", Status: model.StatusPending, Name: "Saw", Details: &model.Details{Make: "Bosch"}},
		{ID: "3", Status: model.StatusSell, Details: &model.Details{Make: "Makita", Model: "DHP482"}},
		{ID: "4", Status: model.StatusScrap, Name: "Broken bosch charger"},
		{ID: "5", Status: model.StatusSell},
	}
}

func TestItemsByStatus(t *testing.T) {
	got := Items(sampleItems(), Criteria{Status: model.StatusSell})
	want := []string{"1", "3", "5"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("expected %v, got %v", want, ids(got))
	}
}

func TestItemsSearchMake(t *testing.T) {
	items := []model.Item{
		{ID: "a", Name: "Drill", Details: &model.Details{}},
		{ID: "b", Name: "Saw", Details: &model.Details{Make: "Bosch"}},
	}
	got := Items(items, Criteria{Search: "bosch"})
	if !reflect.DeepEqual(ids(got), []string{"b"}) {
		t.Errorf("expected only b, got %v", ids(got))
	}
}

func TestItemsSearch(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"BOSCH", []string{"2", "4"}},
		{"dhp", []string{"3"}},
		{"dri", []string{"1"}},
		{"nothing", []string{}},
		{"", []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		got := Items(sampleItems(), Criteria{Search: tt.search})
		if !reflect.DeepEqual(ids(got), tt.want) {
			t.Errorf("search %q: expected %v, got %v", tt.search, tt.want, ids(got))
		}
	}
}

func TestItemsStatusAndSearch(t *testing.T) {
	got := Items(sampleItems(), Criteria{Status: model.StatusScrap, Search: "bosch"})
	if !reflect.DeepEqual(ids(got), []string{"4"}) {
		t.Errorf("expected [4], got %v", ids(got))
	}

	got = Items(sampleItems(), Criteria{Status: model.StatusSell, Search: "bosch"})
	if len(got) != 0 {
		t.Errorf("expected no items, got %v", ids(got))
	}
}

func TestItemsDoesNotModifyInput(t *testing.T) {
	items := sampleItems()
	before := sampleItems()
	Items(items, Criteria{Status: model.StatusPending, Search: "saw"})
	if !reflect.DeepEqual(items, before) {
		t.Error("input was modified")
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleItems())
	want := map[model.Status]int{
		model.StatusPending: 1,
		model.StatusScrap:   1,
		model.StatusSell:    3,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("expected %v, got %v", want, counts)
	}

	empty := CountByStatus(nil)
	if len(empty) != 3 || empty[model.StatusSell] != 0 {
		t.Errorf("expected zero entries for every status, got %v", empty)
	}
}
