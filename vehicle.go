package aerovector

// defaultRoughness is the relative roughness of the body surface.
const defaultRoughness = 60e-6

// Vehicle is the static definition of a rocket.
type Vehicle struct {
	Name            string
	Stations        []Station // outer mold line, nose tip first
	Ogive           bool      // tangent ogive nose instead of a cone
	Fins            bool      // whether fins are used at all
	FinPoints       FinPoints // stabilizing fins
	FinsAttached    bool
	ControlFins     bool      // actuated fins, only used with Fins
	ControlPoints   FinPoints // control fins, relative to the body like FinPoints
	ControlAttached bool
	Xcg             float64      // center of gravity, from the nose tip
	Airfoil         AirfoilTable // zero means WindTunnelModified
	Roughness       float64      // relative roughness, 60e-6 if zero
}

func (v Vehicle) roughness() float64 {
	if v.Roughness > 0 {
		return v.Roughness
	}
	return defaultRoughness
}
