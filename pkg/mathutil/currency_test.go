package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Peso amount", 9139.7241, 9139.72},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNegative(t *testing.T) {
	if !IsNegative(-0.5) {
		t.Error("IsNegative(-0.5) should be true")
	}
	if IsNegative(-0.001) {
		t.Error("IsNegative(-0.001) should be false within tolerance")
	}
	if IsNegative(3) {
		t.Error("IsNegative(3) should be false")
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b, tol float64
		expected  bool
	}{
		{"Equal", 100, 100, 0.01, true},
		{"Inside", 100, 100.005, 0.01, true},
		{"Outside", 100, 100.02, 0.01, false},
		{"Wide tolerance", 1750905, 1750906, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(tt.a, tt.b, tt.tol); result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tol, result, tt.expected)
			}
		})
	}
}
