package aerovector

import (
	"errors"
	"fmt"
	"math"
)

const (
	// detachedARFactor models the piece of body next to a detached fin as an
	// end plate of 0.2 h/span: the aspect ratio of the fin pair is scaled by
	// 1-r/2 with r = 0.75. r=1 gives one fin alone, r=0 a fin on the body.
	detachedARFactor = 0.625
	// finsPerPlane is the number of fins producing normal force in the pitch plane.
	finsPerPlane = 2
)

// ErrDegenerateFin is returned when a fin has no span or no area.
var ErrDegenerateFin = errors.New("degenerate fin geometry")

// FinPoints are the four planform points of a fin, each as
// (longitudinal position, span position), from the nose down to the tail:
//
//	[0]|\
//	   | \[1]
//	   | |
//	[3]|_|[2]
type FinPoints [4][2]float64

// zeroFinPoints is the placeholder used when a rocket has no control fins.
var zeroFinPoints = FinPoints{{0.00001, 0}, {0.0001, 0.0001}, {0.0002, 0.0001}, {0.0002, 0}}

// Fin is the geometry of one fin set, without body interference.
type Fin struct {
	points   FinPoints
	attached bool
	airfoil  Airfoil
	cRoot    float64
	cTip     float64
	xTail    float64 // sweep length of the leading edge
	span     float64
	area     float64
	ar       float64
	yMAC     float64
	xForce   float64 // CP aft of the root leading edge
	sweep    float64 // quarter chord sweep angle
}

// FinSlope is the normal force slope of a fin at one angle of attack.
type FinSlope struct {
	CNAlpha0 float64 // 2D slope
	CNAlpha  float64 // 3D slope after Diederich's correction
	CA       float64 // 2D axial coefficient
}

// NewFin returns a fin with all its derived geometry. The points are copied.
func NewFin(points FinPoints, attached bool, airfoil Airfoil) (Fin, error) {
	if airfoil.kind == 0 {
		airfoil = NewAirfoil(WindTunnelModified)
	}
	f := Fin{points: points, attached: attached, airfoil: airfoil}
	f.cRoot = points[3][0] - points[0][0]
	f.cTip = points[2][0] - points[1][0]
	f.xTail = points[1][0] - points[0][0]
	f.span = points[1][1] - points[0][1]
	f.area = (f.cRoot + f.cTip) * f.span / 2
	if f.span <= 0 || f.area <= 0 {
		return Fin{}, fmt.Errorf("%w: span=%g area=%g", ErrDegenerateFin, f.span, f.area)
	}
	f.yMAC, f.xForce = macOffsets(f.cRoot, f.cTip, f.span, f.xTail)
	// A fin on the body has no root vortex: its aspect ratio is the one of
	// two fins joined at the root.
	f.ar = 2 * f.span * f.span / f.area
	if !attached {
		f.ar *= detachedARFactor
	}
	xTip := points[1][0] + 0.25*f.cTip
	xRoot := points[0][0] + 0.25*f.cRoot
	f.sweep = math.Atan((xTip - xRoot) / f.span)
	return f, nil
}

// ZeroFin returns a near zero area fin, used in place of missing control fins.
func ZeroFin(airfoil Airfoil) Fin {
	f, err := NewFin(zeroFinPoints, true, airfoil)
	if err != nil {
		panic(err)
	}
	return f
}

// macOffsets returns the span position of the mean aerodynamic chord and the
// CP position aft of the root leading edge of a trapezoidal fin.
func macOffsets(cRoot, cTip, span, xTail float64) (yMAC, xForce float64) {
	k1 := cRoot + 2*cTip
	k2 := cRoot + cTip
	k3 := cRoot*cRoot + cTip*cTip + cRoot*cTip
	if k2 == 0 {
		return 0, 0
	}
	yMAC = (span / 3) * (k1 / k2)
	xForce = (xTail/3)*(k1/k2) + (1./6)*(k3/k2)
	return
}

// Points returns the planform points.
func (f Fin) Points() FinPoints { return f.points }

// Attached returns whether the fin root is on the body.
func (f Fin) Attached() bool { return f.attached }

// RootChord returns the root chord.
func (f Fin) RootChord() float64 { return f.cRoot }

// TipChord returns the tip chord.
func (f Fin) TipChord() float64 { return f.cTip }

// Span returns the span of one fin.
func (f Fin) Span() float64 { return f.span }

// Area returns the planform area of one fin.
func (f Fin) Area() float64 { return f.area }

// AspectRatio returns the aspect ratio used for the lift slope.
func (f Fin) AspectRatio() float64 { return f.ar }

// MACSpan returns the span position of the mean aerodynamic chord.
func (f Fin) MACSpan() float64 { return f.yMAC }

// SweepAngle returns the quarter chord sweep angle (rad).
func (f Fin) SweepAngle() float64 { return f.sweep }

// CP returns the longitudinal position of the fin center of pressure.
func (f Fin) CP() float64 { return f.points[0][0] + f.xForce }

// RootRadius returns the body radius at the fin root.
func (f Fin) RootRadius() float64 { return f.points[0][1] }

// interference returns the body interference factor KT of an attached fin.
func (f Fin) interference() float64 {
	r := f.RootRadius()
	return 1 + r/(f.span+r)
}

// LiftSlope returns the 3D normal force slope of the fin at the given angle of attack.
func (f Fin) LiftSlope(aoa, β, mach float64) FinSlope {
	c := f.airfoil.Coefficients(aoa)
	return FinSlope{
		CNAlpha0: c.CNAlpha,
		CNAlpha:  diederich(c.CNAlpha, f.ar, f.sweep, β, mach),
		CA:       c.CA,
	}
}

// diederich converts a 2D slope into the slope of a finite wing. It tends to
// the 2D slope for large aspect ratios and to slender wing theory for small ones.
func diederich(cnα0, ar, sweep, β, mach float64) float64 {
	if cnα0 == 0 {
		// Limit of the expression below.
		return 0
	}
	eff := cnα0 / (2 * math.Pi)
	cosΛ := math.Cos(sweep)
	cosSBE := (β / math.Sqrt(1-mach*mach*cosΛ*cosΛ)) * cosΛ
	k1 := 1 / β
	k2 := (ar * β) / (eff * cosSBE)
	k3 := (4 * eff * eff * cosSBE * cosSBE) / (ar * ar * β * β)
	k4 := math.Sqrt(1 + k3)
	return k1 * (k2 / (k2*k4 + 2)) * cnα0 * cosSBE
}
