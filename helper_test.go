package aerovector

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// goldenTol is the relative tolerance against values from the empirical formulas.
const goldenTol = 1e-6

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func assertRel(t *testing.T, name string, got, exp float64) {
	t.Helper()
	if !scalar.EqualWithinRel(got, exp, goldenTol) {
		t.Fatalf("%s = %.16g, expected %.16g", name, got, exp)
	}
}

// coneCylinder is the reference body: a 1 m cone followed by a 2 m cylinder, 0.1 m in diameter.
func coneCylinder() []Station {
	return []Station{{0, 0}, {1, 0.1}, {3, 0.1}}
}

// finnedVehicle is a small sounding rocket with canards.
func finnedVehicle() Vehicle {
	return Vehicle{
		Name:            "test",
		Stations:        []Station{{0, 0}, {0.2, 0.066}, {0.9, 0.066}},
		Ogive:           true,
		Fins:            true,
		FinPoints:       FinPoints{{0.7, 0.033}, {0.77, 0.08}, {0.85, 0.08}, {0.85, 0.033}},
		FinsAttached:    true,
		ControlFins:     true,
		ControlPoints:   FinPoints{{0.2, 0.033}, {0.22, 0.06}, {0.26, 0.06}, {0.26, 0.033}},
		ControlAttached: true,
		Xcg:             0.55,
	}
}
