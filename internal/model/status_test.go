package model

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"scrap", StatusScrap, false},
		{"sell", StatusSell, false},
		{"", "", true},
		{"Sell", "", true},
		{"sold", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusLabelAndColor(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		color  string
	}{
		{StatusPending, "Pending", "bg-yellow-100 text-yellow-800 border-yellow-200"},
		{StatusScrap, "Scrap", "bg-red-100 text-red-800 border-red-200"},
		{StatusSell, "Sell", "bg-green-100 text-green-800 border-green-200"},
		// Unknown statuses fall back to gray.
		{"other", "other", "bg-gray-100 text-gray-800 border-gray-200"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("%q.Label() = %q, want %q", tt.status, got, tt.label)
		}
		if got := tt.status.Color(); got != tt.color {
			t.Errorf("%q.Color() = %q, want %q", tt.status, got, tt.color)
		}
	}
}
