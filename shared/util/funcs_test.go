package util

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end, amount, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{10, 0, 0.25, 7.5},
		{-4, 4, 0.5, 0},
	}

	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.amount); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.amount, got, tt.want)
		}
	}
}
