package aerovector

import "math"

const (
	// Skin friction regimes.
	laminarReynolds = 1e5
	laminarCf       = 1.48e-2
	// backwardsBaseCD is the pressure drag of a hollow cylinder, used for
	// the base when the rocket flies backwards.
	backwardsBaseCD = 1.0
)

// caScale converts the zero lift drag into an axial coefficient through the
// whole aoa range. A fitted third order polynomial would be better but a
// linear interpolation is good enough.
var caScale = mustTable(
	[]float64{-180 * deg2rad, -(180 - 17) * deg2rad, -(180 - 70) * deg2rad, -90 * deg2rad,
		-70 * deg2rad, -17 * deg2rad, 0, 17 * deg2rad, 70 * deg2rad, 90 * deg2rad,
		(180 - 70) * deg2rad, (180 - 17) * deg2rad, 180 * deg2rad},
	[]float64{-1, -1.3, -0.097777, 0, 0.097777, 1.3, 1, 1.3, 0.097777, 0, -0.097777, -1.3, -1})

// Drag is the zero lift drag build-up of the body. The boundary layer is
// always turbulent, boattails are treated as shoulders, the base drag is not
// reduced by the motor exhaust and the pressure drag is not corrected for
// compressibility.
type Drag struct {
	Reynolds float64
	Cf       float64 // skin friction coefficient
	Friction float64
	Pressure float64
	Base     float64
	CD0      float64 // Friction + Pressure + Base
	Scale    float64 // CD0 to CA factor at this aoa
}

// segmentPressureCD returns the pressure drag coefficient of each segment from its half angle.
func segmentPressureCD(b Body) []float64 {
	cd := make([]float64, len(b.planArea))
	for i := range cd {
		l := b.stations[i+1].X - b.stations[i].X
		r1 := b.stations[i].D / 2
		r2 := b.stations[i+1].D / 2
		φ := math.Atan((r2 - r1) / l)
		sinφ := math.Sin(φ)
		cd[i] = 0.8 * (sinφ * sinφ)
	}
	if b.ogive {
		cd[0] = 0
	}
	return cd
}

// criticalReynolds returns the Reynolds number above which the skin friction is roughness limited.
func criticalReynolds(roughness, length float64) float64 {
	return 51 * math.Pow(roughness/length, -1.039)
}

// skinFriction returns the skin friction coefficient, derated for Mach.
func (r *Rocket) skinFriction(reynolds, mach float64) float64 {
	var cf float64
	switch {
	case reynolds < laminarReynolds:
		cf = laminarCf
	case reynolds < r.reynoldsCrit:
		cf = 1 / math.Pow(1.5*math.Log(reynolds)-5.6, 2)
	default:
		cf = 0.032 * math.Pow(r.roughness/r.body.Length(), 0.2)
	}
	return cf * (1 - 0.1*mach*mach)
}

// dragBuildUp returns the zero lift drag and its conversion factor to CA.
func (r *Rocket) dragBuildUp(aoa, speed, rho, mu, mach float64) Drag {
	b := r.body
	ref := b.ReferenceArea()
	d := Drag{Reynolds: (rho * speed * b.Length()) / mu}
	d.Cf = r.skinFriction(d.Reynolds, mach)
	d.Friction = (d.Cf * ((1 + 1/(2*b.Fineness())) * b.WetArea())) / ref
	n := len(r.pressureCD)
	for i, cd := range r.pressureCD {
		if i == n-1 && math.Abs(aoa) > math.Pi/2 {
			// Flying backwards: the base is the frontal area.
			d.Pressure += (b.crossArea[i+1] / ref) * backwardsBaseCD
			continue
		}
		d.Pressure += (math.Abs(b.crossArea[i+1]-b.crossArea[i]) / ref) * cd
	}
	d.Base = (b.crossArea[n] / ref) * (0.12 + 0.13*mach*mach)
	d.CD0 = d.Pressure + d.Base + d.Friction
	d.Scale = caScale.at(aoa)
	return d
}
