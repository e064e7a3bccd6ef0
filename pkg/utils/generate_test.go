package utils

import (
	"regexp"
	"testing"
)

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^SN\d{6}$`)
	for i := 0; i < 50; i++ {
		ref := GenerateBookingReference()
		if !pattern.MatchString(ref) {
			t.Fatalf("unexpected reference format %q", ref)
		}
	}
}

func TestGenerateTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN[0-9A-F]{9}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := GenerateTransactionID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected transaction id format %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate transaction id %q", id)
		}
		seen[id] = true
	}
}

func TestJoinSeatNumbers(t *testing.T) {
	tests := []struct {
		name  string
		seats []int
		want  string
	}{
		{"single", []int{7}, "7"},
		{"sorted", []int{2, 5, 8}, "2, 5, 8"},
		{"unsorted input", []int{8, 2, 5}, "2, 5, 8"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinSeatNumbers(tt.seats); got != tt.want {
				t.Errorf("JoinSeatNumbers(%v) = %q, want %q", tt.seats, got, tt.want)
			}
		})
	}
}
