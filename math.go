package aerovector

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
	// zeroAoA replaces an angle of exactly zero wherever a coefficient is divided by it.
	zeroAoA = 0.0001
)

// errTable is returned when a curve cannot be used for interpolation.
var errTable = errors.New("invalid interpolation table")

// Deg2rad converts degrees to radians. The sign is kept: aerodynamic angles live in [-180, 180].
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees, keeping the sign.
func Rad2deg(a float64) float64 {
	return a * rad2deg
}

// sign returns 1 for non negative numbers and -1 otherwise.
func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// nonZero returns v unless it is exactly zero, in which case zeroAoA is returned.
func nonZero(v float64) float64 {
	if v == 0 {
		return zeroAoA
	}
	return v
}

// table is a bounded piecewise linear curve. Queries outside of the abscissa
// return the value of the nearest end point.
type table struct {
	pl interp.PiecewiseLinear
}

// newTable fits a table on a copy of xs and ys.
func newTable(xs, ys []float64) (table, error) {
	if len(xs) != len(ys) {
		return table{}, fmt.Errorf("%w: %d abscissae for %d ordinates", errTable, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return table{}, fmt.Errorf("%w: need at least two points, got %d", errTable, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return table{}, fmt.Errorf("%w: abscissa not strictly increasing at index %d", errTable, i)
		}
	}
	var t table
	if err := t.pl.Fit(xs, ys); err != nil {
		return table{}, fmt.Errorf("%w: %s", errTable, err)
	}
	return t, nil
}

// mustTable is newTable for the built-in data sets.
func mustTable(xs, ys []float64) table {
	t, err := newTable(xs, ys)
	if err != nil {
		panic(err)
	}
	return t
}

// at returns the interpolated value at x.
func (t table) at(x float64) float64 {
	return t.pl.Predict(x)
}
