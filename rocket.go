package aerovector

import (
	"errors"
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/floats"
)

const (
	// minMach keeps the Prandtl-Glauert factor away from its singularity.
	minMach = 0.001
	// crossflowK is the empirical viscous crossflow coefficient of the body.
	crossflowK = 1.1
	// SeaLevelDensity is the ISA density at sea level (kg/m^3).
	SeaLevelDensity = 1.225
	// SeaLevelViscosity is the dynamic viscosity of air at sea level (Pa.s).
	SeaLevelViscosity = 1.784e-5
)

// ErrCGOutsideBody is returned when the center of gravity is not strictly within the body.
var ErrCGOutsideBody = errors.New("center of gravity outside of the body")

// FlightState is the state of the rocket seen by the aerodynamics at one instant.
type FlightState struct {
	AoA      float64    // angle of attack (rad)
	Velocity [2]float64 // local velocity, forward and sideways (m/s)
	Rho      float64    // air density
	Mu       float64    // dynamic viscosity
	Mach     float64
	Actuator float64 // control fin deflection (rad)
	Q        float64 // dynamic pressure, passed through for the integrator
}

// NewFlightState returns a sea level flight state.
func NewFlightState(aoa float64, velocity [2]float64, mach float64) FlightState {
	return FlightState{AoA: aoa, Velocity: velocity, Rho: SeaLevelDensity, Mu: SeaLevelViscosity, Mach: mach}
}

// Aero are the aerodynamic coefficients of the rocket for one flight state.
type Aero struct {
	CN   float64 // normal force coefficient, negative for a positive aoa
	CP   float64 // center of pressure from the nose tip
	CA   float64 // axial force coefficient
	Drag Drag    // zero lift drag build-up
}

func (a Aero) String() string {
	return fmt.Sprintf("CN=%.6f CP=%.6f CA=%.6f", a.CN, a.CP, a.CA)
}

// normalForce holds the slopes needed for the CP and the fin axial force.
type normalForce struct {
	cn       float64
	bodyCNα  []float64  // per segment
	finCNα   [2]float64 // rocket normal slopes, main then control fin
	finCA    [2]float64
	axialCNα float64 // control fin slope resolved along the rocket axis
}

// Rocket computes the aerodynamics of a finned body. Evaluate does not
// modify the rocket so one instance may be shared by concurrent evaluations;
// SetMotor, IsOnPad and Reset must be serialized by the caller.
type Rocket struct {
	Name         string
	body         Body
	fins         [2]Fin // main fin, control fin
	useFins      bool
	xcg          float64
	roughness    float64
	reynoldsCrit float64
	pressureCD   []float64
	qDampBody    float64
	motor        Thruster
	pad          Pad
	logger       kitlog.Logger
}

// NewRocket returns a rocket for this vehicle. A nil logger discards all logs.
func NewRocket(v Vehicle, logger kitlog.Logger) (*Rocket, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "rocket", v.Name)
	body, err := NewBody(v.Stations, v.Ogive)
	if err != nil {
		logger.Log("level", "critical", "subsys", "geometry", "err", err)
		return nil, err
	}
	if v.Xcg <= 0 || v.Xcg >= body.Length() {
		err = fmt.Errorf("%w: xcg=%g length=%g", ErrCGOutsideBody, v.Xcg, body.Length())
		logger.Log("level", "critical", "subsys", "geometry", "err", err)
		return nil, err
	}
	airfoil := NewAirfoil(v.Airfoil)
	r := &Rocket{
		Name:      v.Name,
		body:      body,
		useFins:   v.Fins,
		xcg:       v.Xcg,
		roughness: v.roughness(),
		logger:    logger,
	}
	r.fins[1] = ZeroFin(airfoil)
	if v.Fins {
		if r.fins[0], err = NewFin(v.FinPoints, v.FinsAttached, airfoil); err != nil {
			logger.Log("level", "critical", "subsys", "geometry", "fin", "main", "err", err)
			return nil, fmt.Errorf("main fins: %w", err)
		}
		if v.ControlFins {
			if r.fins[1], err = NewFin(v.ControlPoints, v.ControlAttached, airfoil); err != nil {
				logger.Log("level", "critical", "subsys", "geometry", "fin", "control", "err", err)
				return nil, fmt.Errorf("control fins: %w", err)
			}
		} else {
			logger.Log("level", "notice", "subsys", "geometry", "message", "no control fins, using a zero area fin")
		}
	}
	r.pressureCD = segmentPressureCD(body)
	r.reynoldsCrit = criticalReynolds(r.roughness, body.Length())
	r.qDampBody = pitchDampingBody(body, v.Xcg)
	logger.Log("level", "info", "subsys", "geometry", "length", body.Length(), "refArea", body.ReferenceArea(),
		"fineness", body.Fineness(), "fins", v.Fins, "airfoil", airfoil.Table())
	return r, nil
}

// Body returns the body geometry.
func (r *Rocket) Body() Body { return r.body }

// Fins returns the main and control fins.
func (r *Rocket) Fins() (main, control Fin) { return r.fins[0], r.fins[1] }

// UseFins returns whether the fins are accounted for.
func (r *Rocket) UseFins() bool { return r.useFins }

// Xcg returns the center of gravity position.
func (r *Rocket) Xcg() float64 { return r.xcg }

// ReferenceArea returns the area used to non-dimensionalize every coefficient.
func (r *Rocket) ReferenceArea() float64 { return r.body.ReferenceArea() }

// Evaluate returns the CN, CP and CA of the rocket in this flight state.
func (r *Rocket) Evaluate(s FlightState) Aero {
	mach := math.Max(s.Mach, minMach)
	β := math.Sqrt(1 - mach*mach)
	n := r.normalForce(s.AoA, s.Actuator, mach, β)
	a := Aero{CN: n.cn, CP: r.centerOfPressure(n)}
	a.Drag = r.dragBuildUp(s.AoA, floats.Norm(s.Velocity[:], 2), s.Rho, s.Mu, mach)
	a.CA = a.Drag.CD0 * a.Drag.Scale
	if r.useFins {
		ref := r.body.ReferenceArea()
		// Control fin assumed parallel to the body.
		for i, f := range r.fins {
			a.CA += n.finCA[i] * (finsPerPlane * f.area / ref)
		}
		// The deflected fin normal force leans backwards.
		a.CA += n.axialCNα * (s.AoA - s.Actuator)
	}
	return a
}

// normalForce sums the Barrowman, viscous crossflow and fin contributions.
// The slopes are taken at 0.0001 rad when the aoa is zero but the forces use
// the real aoa, so CN vanishes at zero.
func (r *Rocket) normalForce(aoa, actuator, mach, β float64) normalForce {
	// A positive aoa produces a negative CN.
	sgn := -sign(aoa)
	α := math.Abs(aoa)
	x := math.Abs(nonZero(aoa))
	ref := r.body.ReferenceArea()
	sinα, sinx := math.Sin(α), math.Sin(x)
	n := normalForce{bodyCNα: make([]float64, len(r.body.planArea))}
	for i := range n.bodyCNα {
		dA := r.body.crossArea[i+1] - r.body.crossArea[i]
		cross := crossflowK * (r.body.planArea[i] / ref)
		n.bodyCNα[i] = (2*sinx/ref*dA + cross*(sinx*sinx)) / x
		n.cn += 2*sinα/ref*dA + cross*(sinα*sinα)
	}
	if r.useFins {
		// The slope is linear in the fin aoa, so the control fin may be
		// evaluated at aoa - actuator.
		slopes := [2]FinSlope{
			r.fins[0].LiftSlope(x, β, mach),
			r.fins[1].LiftSlope(nonZero(aoa-actuator), β, mach),
		}
		for i, f := range r.fins {
			cnα := finsPerPlane * (f.area / ref) * slopes[i].CNAlpha
			if f.attached {
				cnα *= f.interference()
			}
			n.finCNα[i] = cnα
			n.finCA[i] = slopes[i].CA
		}
		normal := n.finCNα[1]
		n.finCNα[1] = normal * math.Cos(actuator)
		// CA always points backwards, whatever the deflection sign.
		n.axialCNα = normal * math.Abs(math.Sin(actuator))
		n.cn += n.finCNα[0] * α
		n.cn += n.finCNα[1] * α
	}
	n.cn *= sgn
	return n
}

// centerOfPressure averages the location of each contributor weighted by its slope.
// The force of a body segment acts at its centroid.
func (r *Rocket) centerOfPressure(n normalForce) float64 {
	var moment, force float64
	for i, cnα := range n.bodyCNα {
		moment += r.body.SegmentCentroid(i) * cnα
		force += cnα
	}
	if r.useFins {
		for i, f := range r.fins {
			moment += f.CP() * n.finCNα[i]
			force += n.finCNα[i]
		}
	}
	if force == 0 {
		return r.body.centroid[0]
	}
	return moment / force
}
