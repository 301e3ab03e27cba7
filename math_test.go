package aerovector

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngles(t *testing.T) {
	for i := -180.0; i <= 180; i += 0.5 {
		if !scalar.EqualWithinAbs(Rad2deg(Deg2rad(i)), i, 1e-10) {
			t.Fatalf("incorrect conversion for %3.2f", i)
		}
	}
	if !scalar.EqualWithinAbs(Deg2rad(-90), -math.Pi/2, 1e-15) {
		t.Fatal("sign lost for -90")
	}
}

func TestMisc(t *testing.T) {
	if sign(10) != 1 {
		t.Fatal("sign of 10 != 1")
	}
	if sign(-10) != -1 {
		t.Fatal("sign of -10 != -1")
	}
	if sign(0) != 1 {
		t.Fatal("sign of 0 != 1")
	}
	if nonZero(0) != zeroAoA || nonZero(-0.5) != -0.5 {
		t.Fatal("nonZero only replaces zero")
	}
}

func TestTable(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{2, 4, 0}
	tbl, err := newTable(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	xs[1] = 2 // the table owns a copy
	for _, c := range []struct{ x, y float64 }{
		{-1, 2}, {0, 2}, {0.5, 3}, {1, 4}, {2, 2}, {3, 0}, {10, 0},
	} {
		if got := tbl.at(c.x); !scalar.EqualWithinAbs(got, c.y, 1e-12) {
			t.Fatalf("at(%f) = %f, expected %f", c.x, got, c.y)
		}
	}
	for _, c := range []struct{ xs, ys []float64 }{
		{[]float64{0, 1}, []float64{1}},
		{[]float64{0}, []float64{1}},
		{[]float64{0, 0}, []float64{1, 2}},
		{[]float64{1, 0.5}, []float64{1, 2}},
	} {
		if _, err := newTable(c.xs, c.ys); !errors.Is(err, errTable) {
			t.Fatalf("expected a table error for %v, got %v", c.xs, err)
		}
	}
	assertPanic(t, func() {
		mustTable([]float64{0}, []float64{0})
	})
}
