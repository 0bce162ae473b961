package utils

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullStringToStringPtr(t *testing.T) {
	ns := sql.NullString{String: "hello", Valid: true}
	p := NullStringToStringPtr(ns)
	if p == nil || *p != "hello" {
		t.Fatalf("expected pointer to 'hello', got %v", p)
	}

	ns2 := sql.NullString{Valid: false}
	p2 := NullStringToStringPtr(ns2)
	if p2 != nil {
		t.Fatalf("expected nil pointer, got %v", p2)
	}
}

func TestPointerToString(t *testing.T) {
	s := "world"
	if PointerToString(&s) != "world" {
		t.Fatalf("expected 'world'")
	}
	if PointerToString(nil) != "<nil>" {
		t.Fatalf("expected '<nil>' for nil pointer")
	}
}

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if p.CurrentPage != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage)
	}

	// Defaults kick in for non-positive values.
	p = CreatePagination(5, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 10 {
		t.Fatalf("expected defaults, got page %d size %d", p.CurrentPage, p.PageSize)
	}
}

func TestParseDate(t *testing.T) {
	cases := []string{
		"2023-06-24T10:30:00Z",
		"2023-06-24T10:30:00",
		"2023-06-24",
	}
	for _, c := range cases {
		parsed, err := ParseDate(c)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c, err)
		}
		if parsed.Year() != 2023 || parsed.Month() != time.June || parsed.Day() != 24 {
			t.Fatalf("wrong date for %q: %v", c, parsed)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestHourLabel(t *testing.T) {
	cases := map[int]string{
		0:  "12AM",
		9:  "9AM",
		12: "12PM",
		15: "3PM",
		23: "11PM",
	}
	for hour, want := range cases {
		if got := HourLabel(hour); got != want {
			t.Fatalf("HourLabel(%d) = %q, want %q", hour, got, want)
		}
	}
}
