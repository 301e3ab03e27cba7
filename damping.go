package aerovector

import "math"

// dampingFlatPlateSlope is 90% of the 2π flat plate slope.
const dampingFlatPlateSlope = 5.65

// pitchDampingBody approximates the damping of the body as the drag moment of
// a cylinder rotating at 90° aoa. The fore and aft "average radii" are the sums
// of the station positions on each side of the CG over the lever length.
// The result has to be multiplied by rho*Q^2 to obtain a moment.
func pitchDampingBody(b Body, xcg float64) float64 {
	var fore, aft float64
	for i := 0; i < len(b.stations) && b.stations[i].X < xcg; i++ {
		fore += b.stations[i].X
	}
	for i := len(b.stations) - 1; i >= 0 && b.stations[i].X > xcg; i-- {
		aft += b.stations[i].X
	}
	lFore := xcg
	lAft := b.Length() - xcg
	avgFore := fore / lFore
	avgAft := aft / lAft
	return 0.275*avgFore*math.Pow(lFore, 4) + 0.275*avgAft*math.Pow(lAft, 4)
}

// PitchDampingBody returns the pitch damping coefficient of the body.
// It is a rough approximation, computed once for the configured CG.
func (r *Rocket) PitchDampingBody() float64 {
	return r.qDampBody
}

// PitchDampingFins returns the damping moment produced by the increase of the
// fin aoa due to the pitch rate, aoa = atan(q*r/v) ~ q*r/v, for the given
// forward velocity. Multiply by rho*Q to obtain a moment.
func (r *Rocket) PitchDampingFins(vx float64) float64 {
	if !r.useFins {
		return 0
	}
	var m float64
	for _, f := range r.fins {
		arm := f.CP() - r.xcg
		force := 0.5 * vx * dampingFlatPlateSlope * arm * finsPerPlane * f.area
		m += math.Abs(force * arm)
	}
	return m
}
