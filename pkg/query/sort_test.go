package query

import (
	"errors"
	"testing"
)

func TestParseSort(t *testing.T) {
	allowed := NewFields("price", "createdAt")

	tests := []struct {
		token string
		want  Sort
	}{
		{"price-asc", Sort{Field: "price", Direction: Ascending}},
		{"price-desc", Sort{Field: "price", Direction: Descending}},
		{"createdAt-desc", Sort{Field: "createdAt", Direction: Descending}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSort(tt.token, allowed)
			if err != nil {
				t.Fatalf("ParseSort(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseSort(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseSortErrors(t *testing.T) {
	allowed := NewFields("price")

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"no separator", "price", ErrInvalidSort},
		{"unknown direction", "price-descending", ErrInvalidSortBy},
		{"empty direction", "price-", ErrInvalidSortBy},
		{"field not allowed", "secret-asc", ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSort(tt.token, allowed)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSort(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
		})
	}
}

func TestSortSQL(t *testing.T) {
	s := Sort{Field: "createdAt", Direction: Descending}
	if got := s.SQL("", SnakeCase); got != "created_at DESC" {
		t.Errorf("SQL() = %q, want %q", got, "created_at DESC")
	}
	if got := s.SQL("orders", SnakeCase); got != "orders.created_at DESC" {
		t.Errorf("SQL() = %q, want %q", got, "orders.created_at DESC")
	}

	asc := Sort{Field: "price", Direction: Ascending}
	if got := asc.SQL("", nil); got != "price ASC" {
		t.Errorf("SQL() = %q, want %q", got, "price ASC")
	}
}
