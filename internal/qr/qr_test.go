package qr

import (
	"net/url"
	"testing"
)

func TestReferenceDefaults(t *testing.T) {
	got := Reference("lq2x9abc")
	want := "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=lq2x9abc"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReferenceIsDeterministic(t *testing.T) {
	if Reference("abc") != Reference("abc") {
		t.Error("expected the same reference for the same id")
	}
	if Reference("abc") == Reference("abd") {
		t.Error("expected different references for different ids")
	}
}

func TestBuilderCustom(t *testing.T) {
	b := Builder{BaseURL: "http://qr.local/render?format=png", Size: 300}
	got := b.Reference("a b&c")

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parsing reference: %v", err)
	}
	q := u.Query()
	if q.Get("format") != "png" {
		t.Errorf("expected existing query kept, got %q", got)
	}
	if q.Get("size") != "300x300" {
		t.Errorf("expected size 300x300, got %q", q.Get("size"))
	}
	if q.Get("data") != "a b&c" {
		t.Errorf("expected data escaped and recoverable, got %q", q.Get("data"))
	}
}
