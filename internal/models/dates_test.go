package models

import (
	"encoding/json"
	"testing"
)

func TestFlexDate_tripleForm(t *testing.T) {
	var v struct {
		Date FlexDate `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":[2024,3,1]}`), &v); err != nil {
		t.Fatalf("unmarshal triple: %v", err)
	}
	if got := v.Date.ISO(); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %q", got)
	}
}

func TestFlexDate_isoString(t *testing.T) {
	var v struct {
		Date FlexDate `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-12-31"}`), &v); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if got := v.Date.ISO(); got != "2024-12-31" {
		t.Fatalf("expected 2024-12-31, got %q", got)
	}
	if v.Date.Display() != "2024-12-31" {
		t.Fatalf("display mismatch: %q", v.Date.Display())
	}
}

func TestFlexDate_longForm(t *testing.T) {
	d := NewFlexDate("01 March 2024")
	if got := d.ISO(); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %q", got)
	}
}

func TestFlexDate_malformedEchoesRaw(t *testing.T) {
	d := NewFlexDate("not-a-date")
	if d.ISO() != "" {
		t.Fatalf("malformed date should have empty ISO, got %q", d.ISO())
	}
	if d.Display() != "not-a-date" {
		t.Fatalf("malformed date should echo raw, got %q", d.Display())
	}
}

func TestFlexDate_absent(t *testing.T) {
	var d FlexDate
	if !d.IsZero() {
		t.Fatal("zero value should be zero")
	}
	if d.Display() != "" {
		t.Fatalf("absent date should display empty, got %q", d.Display())
	}
}
