package model

import (
	"math"
	"testing"
)

func TestCalculateSupplies(t *testing.T) {
	// 200 ft of taped edge with 10% waste: ceil(220) = 220 ft, 2 rolls.
	// 450 sq ft of floor: 5 drop cloths.
	s := CalculateSupplies(200, 450, 10, 8.50, 24)

	if s.TapeFeetWithWaste != 220 {
		t.Errorf("expected 220 ft with waste, got %.1f", s.TapeFeetWithWaste)
	}
	if s.TapeRolls != 2 {
		t.Errorf("expected 2 rolls, got %d", s.TapeRolls)
	}
	if s.DropCloths != 5 {
		t.Errorf("expected 5 drop cloths, got %d", s.DropCloths)
	}
	if math.Abs(s.TapeCost-17) > 1e-9 {
		t.Errorf("expected $17 tape, got %.2f", s.TapeCost)
	}
	if math.Abs(s.TotalCost-(17+120)) > 1e-9 {
		t.Errorf("expected $137 total, got %.2f", s.TotalCost)
	}
}

func TestCalculateSuppliesExactWasteProducts(t *testing.T) {
	// Waste products that land on a whole number of feet must not round
	// up an extra foot.
	tests := []struct {
		feet  float64
		waste float64
		want  float64
	}{
		{200, 10, 220},
		{100, 15, 115},
		{180, 0, 180},
		{300, 20, 360},
	}
	for _, tt := range tests {
		s := CalculateSupplies(tt.feet, 0, tt.waste, 8.50, 24)
		if s.TapeFeetWithWaste != tt.want {
			t.Errorf("%.0f ft at %.0f%% waste: expected %.0f ft, got %.1f",
				tt.feet, tt.waste, tt.want, s.TapeFeetWithWaste)
		}
	}
}

func TestCalculateSuppliesZeroInputs(t *testing.T) {
	s := CalculateSupplies(0, 0, 10, 8.50, 24)
	if s.TapeRolls != 0 || s.DropCloths != 0 || s.TotalCost != 0 {
		t.Errorf("expected empty supplies, got %+v", s)
	}
}

func TestCalculateSuppliesGuardsBadInput(t *testing.T) {
	s := CalculateSupplies(math.NaN(), -100, math.Inf(1), 8.50, 24)
	if s.TapeRolls != 0 || s.DropCloths != 0 {
		t.Errorf("malformed input should yield zero counts, got %+v", s)
	}
	if math.IsNaN(s.TotalCost) || s.TotalCost < 0 {
		t.Errorf("expected finite non-negative cost, got %v", s.TotalCost)
	}
}
