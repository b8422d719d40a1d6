package describe

import (
	"strings"
	"testing"

	"github.com/erazemk/reciklaza/internal/model"
)

func TestItemPendingWithoutDetailsOrMeasurements(t *testing.T) {
	got := Item(model.Item{Name: "Drill"})
	if got != Pending {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestItemMakeModelYearCondition(t *testing.T) {
	item := model.Item{
		Details: &model.Details{
			Make:      "Acme",
			Model:     "X100",
			Year:      model.Ptr(2020),
			Condition: "good",
		},
		Measurements: &model.Measurements{},
	}

	got := Item(item)
	if !strings.HasPrefix(got, "2020 Acme X100") {
		t.Errorf("expected prefix %q, got %q", "2020 Acme X100", got)
	}
	if !strings.Contains(got, "in good condition.") {
		t.Errorf("expected condition clause, got %q", got)
	}
	if got != "2020 Acme X100 in good condition. " {
		t.Errorf("unexpected description %q", got)
	}
}

func TestItemFull(t *testing.T) {
	item := model.Item{
		Name: "Cordless drill",
		Details: &model.Details{
			Make:  "Bosch",
			Model: "GSR 12V",
			Specs: model.Specs{{Key: "Voltage", Value: "12V"}, {Key: "Chuck", Value: "10mm"}},
		},
		Measurements: &model.Measurements{
			Height: model.Ptr(8.5),
			Depth:  model.Ptr(3.0),
			Weight: model.Ptr(2.2),
		},
	}

	want := "Bosch GSR 12V - Cordless drill . " +
		"Dimensions: Height: 8.5″ Depth: 3″ " +
		"Weight: 2.2 lbs. " +
		"\n\nSpecifications: \n- Voltage: 12V\n- Chuck: 10mm"
	if got := Item(item); got != want {
		t.Errorf("expected\n%q\ngot\n%q", want, got)
	}
}

func TestItemNameMatchingMakeModelIsNotRepeated(t *testing.T) {
	item := model.Item{
		Name:    "Acme X100",
		Details: &model.Details{Make: "Acme", Model: "X100"},
	}
	if got := Item(item); got != "Acme X100 . " {
		t.Errorf("unexpected description %q", got)
	}
}

func TestItemNameStandalone(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		want string
	}{
		{
			name: "no make or model",
			item: model.Item{Name: "Bench", Details: &model.Details{Condition: "fair"}},
			want: "Bench in fair condition. ",
		},
		{
			name: "make without model",
			item: model.Item{Name: "Bench", Details: &model.Details{Make: "Ikea"}},
			want: "Bench . ",
		},
		{
			name: "measurements only",
			item: model.Item{Name: "Crate", Measurements: &model.Measurements{Width: model.Ptr(20.0)}},
			want: "Crate . Dimensions: Width: 20″ ",
		},
		{
			name: "year without make and model",
			item: model.Item{Details: &model.Details{Year: model.Ptr(1999)}},
			want: ". ",
		},
	}

	for _, tt := range tests {
		if got := Item(tt.item); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestItemSkipsZeroMeasurements(t *testing.T) {
	item := model.Item{
		Measurements: &model.Measurements{Height: model.Ptr(0.0), Weight: model.Ptr(0.0)},
	}
	got := Item(item)
	if strings.Contains(got, "Dimensions") || strings.Contains(got, "Weight") {
		t.Errorf("expected zero measurements skipped, got %q", got)
	}
}

func TestItemIsDeterministic(t *testing.T) {
	item := model.Item{
		Details: &model.Details{
			Make:  "A",
			Model: "B",
			Specs: model.Specs{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}, {Key: "k3", Value: "v3"}},
		},
	}
	first := Item(item)
	for i := 0; i < 20; i++ {
		if got := Item(item); got != first {
			t.Fatalf("output changed between calls: %q vs %q", first, got)
		}
	}
}
