package horizon

import (
	"math"
	"testing"
)

func TestDip(t *testing.T) {
	if got := Dip(0); got != 0 {
		t.Errorf("Dip(0) = %v, want 0", got)
	}
	if got := Dip(-10); got != 0 {
		t.Errorf("Dip(-10) = %v, want 0", got)
	}

	// 708 m (Bandung): 1.76·√708 ≈ 46.8 arcminutes.
	if got := Dip(708); math.Abs(got-0.7805) > 1e-3 {
		t.Errorf("Dip(708) = %v, want ≈0.7805", got)
	}
}

func TestFormulaMinutes(t *testing.T) {
	cases := map[float64]int{
		0:    0,
		100:  1, // 0.293° × 4 ≈ 1.17
		708:  3, // 0.781° × 4 ≈ 3.12
		2500: 6, // 1.467° × 4 ≈ 5.87
	}
	for elev, want := range cases {
		if got := FormulaMinutes(elev); got != want {
			t.Errorf("FormulaMinutes(%v) = %d, want %d", elev, got, want)
		}
	}
}

func TestTableMinutes(t *testing.T) {
	cases := []struct {
		elevation float64
		want      int
	}{
		{0, 0},
		{249, 0},
		{250, 1},
		{699, 1},
		{700, 2},
		{999, 2},
		{1000, 3},
		{1299, 3},
		{1300, 4},
		{1699, 4},
		{1700, 5},
		{1999, 5},
		{2000, 6},
		{2499, 6},
		{2500, 6},
		{2501, 7},
		{2750, 7},
		{2751, 8},
		{3300, 10},
	}

	for _, tt := range cases {
		if got := TableMinutes(tt.elevation); got != tt.want {
			t.Errorf("TableMinutes(%v) = %d, want %d", tt.elevation, got, tt.want)
		}
	}
}

func TestCorrectionsMonotonic(t *testing.T) {
	prevTable, prevFormula := 0, 0
	for elev := 0.0; elev <= 4000; elev += 10 {
		tab := TableMinutes(elev)
		if tab < prevTable {
			t.Fatalf("TableMinutes not monotonic at %v m: %d < %d", elev, tab, prevTable)
		}
		form := FormulaMinutes(elev)
		if form < prevFormula {
			t.Fatalf("FormulaMinutes not monotonic at %v m: %d < %d", elev, form, prevFormula)
		}
		prevTable, prevFormula = tab, form
	}
}
