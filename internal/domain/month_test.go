package domain

import (
	"errors"
	"testing"
	"time"
)

func TestMonthKeyOf(t *testing.T) {
	tests := []struct {
		date     string
		expected MonthKey
	}{
		{"2024-01-15", "2024-01"},
		{"2024-12-31", "2024-12"},
		{"1999-06-01", "1999-06"},
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := MonthKeyOf(d); got != tt.expected {
			t.Errorf("MonthKeyOf(%s) = %s, want %s", tt.date, got, tt.expected)
		}
	}
}

func TestMonthKey_Validate(t *testing.T) {
	tests := []struct {
		key     MonthKey
		wantErr bool
	}{
		{"2024-01", false},
		{"2024-12", false},
		{"2024-13", true},
		{"2024-1", true},
		{"Jan 2024", true},
		{"202401", true},
		{"", true},
	}

	for _, tt := range tests {
		err := tt.key.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tt.key)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.key, err)
		}
		if tt.wantErr && err != nil && !errors.Is(err, ErrNonChronologicalMonth) {
			t.Errorf("Validate(%q) error = %v, want ErrNonChronologicalMonth", tt.key, err)
		}
	}
}

// Lexicographic order of valid keys must equal chronological order; the
// running-total computations depend on it.
func TestMonthKey_LexicalOrderIsChronological(t *testing.T) {
	keys := []MonthKey{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			t.Errorf("Expected %s < %s", keys[i-1], keys[i])
		}
		if !keys[i-1].Time().Before(keys[i].Time()) {
			t.Errorf("Expected %s chronologically before %s", keys[i-1], keys[i])
		}
	}
}
