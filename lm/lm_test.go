package lm

import "testing"

func TestCalculateValue(t *testing.T) {
	if got := CalculateValue(); got != 42 {
		t.Errorf("CalculateValue() = %d, want 42", got)
	}
	// The result is stable across calls.
	if CalculateValue() != CalculateValue() {
		t.Error("CalculateValue() is not deterministic")
	}
}
