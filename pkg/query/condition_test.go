package query

import (
	"errors"
	"testing"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		token  string
		want   Condition
		symbol string
	}{
		{"eq", EQ, "="},
		{"ne", NE, "!="},
		{"gt", GT, ">"},
		{"ge", GE, ">="},
		{"lt", LT, "<"},
		{"le", LE, "<="},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseCondition(tt.token)
			if err != nil {
				t.Fatalf("ParseCondition(%q) returned error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseCondition(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if got.Symbol() != tt.symbol {
				t.Errorf("Symbol() = %q, want %q", got.Symbol(), tt.symbol)
			}
		})
	}
}

func TestParseConditionInvalid(t *testing.T) {
	for _, token := range []string{"", "EQ", "equals", "gte", "=", "eq "} {
		if _, err := ParseCondition(token); !errors.Is(err, ErrInvalidCondition) {
			t.Errorf("ParseCondition(%q) error = %v, want ErrInvalidCondition", token, err)
		}
	}
}
