package aerovector

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func bareRocket(t *testing.T, stations []Station) *Rocket {
	r, err := NewRocket(Vehicle{Name: "bare", Stations: stations, Xcg: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRocketGolden(t *testing.T) {
	r := bareRocket(t, coneCylinder())
	s := FlightState{AoA: Deg2rad(5), Velocity: [2]float64{50, 0}, Rho: 1.225, Mu: 1.784e-5, Mach: 0.1}
	a := r.Evaluate(s)
	assertRel(t, "CN", a.CN, -0.4402828180211212)
	assertRel(t, "CP", a.CP, 1.3110314773792713)
	assertRel(t, "CA", a.CA, 0.5405530705493095)
	if a.Drag.CD0*a.Drag.Scale != a.CA {
		t.Fatal("without fins CA is the scaled zero lift drag")
	}
	if again := r.Evaluate(s); again != a {
		t.Fatal("Evaluate must be a pure function of its inputs")
	}
}

func TestRocketFinnedGolden(t *testing.T) {
	r, err := NewRocket(finnedVehicle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		aoa, act   float64 // degrees
		cn, cp, ca float64
	}{
		{5, 0, -0.9282874563652758, 0.4986515959898528, 0.43887868378163786},
		{-5, 0, 0.9282874563652758, 0.4986515959898528, 0.43887868378163797},
		{0, 0, 0, 0.5021464842152163, 0.36922499066681685},
		{10, 3, -2.0818143982464283, 0.49145787191449264, 0.32933757382145157},
		{120, 0, -20.490519211675064, 0.48196299737320863, -0.6401644596827677},
		{-170, 0, 3.5296955923212314, 0.5442624060476922, -1.6370812130314725},
		{5, -4, -0.9242453932851953, 0.4998614945842306, 0.42875671350299355},
	} {
		s := FlightState{
			AoA: Deg2rad(c.aoa), Velocity: [2]float64{30, 2}, Rho: 1.225, Mu: 1.784e-5,
			Mach: 0.3, Actuator: Deg2rad(c.act),
		}
		a := r.Evaluate(s)
		if !scalar.EqualWithinRel(a.CN, c.cn, goldenTol) || !scalar.EqualWithinRel(a.CP, c.cp, goldenTol) ||
			!scalar.EqualWithinRel(a.CA, c.ca, goldenTol) {
			t.Fatalf("aoa=%.0f° act=%.0f°: got %s, expected CN=%.6f CP=%.6f CA=%.6f", c.aoa, c.act, a, c.cn, c.cp, c.ca)
		}
	}
}

func TestRocketZeroAoA(t *testing.T) {
	r, err := NewRocket(finnedVehicle(), nil)
	if err != nil {
		t.Fatal(err)
	}
	a := r.Evaluate(NewFlightState(0, [2]float64{30, 0}, 0.3))
	if math.Abs(a.CN) > 1e-12 {
		t.Fatalf("CN at zero aoa should vanish, got %g", a.CN)
	}
	if math.IsNaN(a.CP) || math.IsNaN(a.CA) {
		t.Fatal("NaN at zero aoa")
	}
	// No jump between zero and the smallest aoa on either side.
	for _, aoa := range []float64{1e-9, -1e-9} {
		if cn := r.Evaluate(NewFlightState(aoa, [2]float64{30, 0}, 0.3)).CN; math.Abs(cn) > 1e-7 || cn*aoa > 0 {
			t.Fatalf("CN at aoa=%g is %g", aoa, cn)
		}
	}
	if cn := bareRocket(t, coneCylinder()).Evaluate(NewFlightState(0, [2]float64{30, 0}, 0)).CN; math.Abs(cn) > 1e-12 {
		t.Fatalf("body CN at zero aoa should vanish, got %g", cn)
	}
}

func TestRocketMonotonicCN(t *testing.T) {
	r := bareRocket(t, coneCylinder())
	prev := 0.0
	for deg := 0.0; deg <= 90; deg += 0.25 {
		cn := r.Evaluate(NewFlightState(Deg2rad(deg), [2]float64{50, 0}, 0.1)).CN
		// Positive aoa gives negative CN: the magnitude must not decrease.
		if cn > 0 || -cn < prev {
			t.Fatalf("|CN| decreased at %.2f°: %g < %g", deg, -cn, prev)
		}
		prev = -cn
	}
}

func TestRocketSymmetry(t *testing.T) {
	r, _ := NewRocket(finnedVehicle(), nil)
	for deg := 1.0; deg < 180; deg += 7 {
		pos := r.Evaluate(NewFlightState(Deg2rad(deg), [2]float64{30, 0}, 0.2))
		neg := r.Evaluate(NewFlightState(-Deg2rad(deg), [2]float64{30, 0}, 0.2))
		if !scalar.EqualWithinAbs(pos.CN, -neg.CN, 1e-12) {
			t.Fatalf("CN not odd at %.0f°", deg)
		}
		if !scalar.EqualWithinAbs(pos.CP, neg.CP, 1e-12) {
			t.Fatalf("CP not even at %.0f°", deg)
		}
		if !scalar.EqualWithinAbs(pos.CA, neg.CA, 1e-9) {
			t.Fatalf("CA not even at %.0f°: %f != %f", deg, pos.CA, neg.CA)
		}
	}
}

func TestRocketBackwards(t *testing.T) {
	r := bareRocket(t, coneCylinder())
	fwd := r.Evaluate(NewFlightState(Deg2rad(10), [2]float64{50, 0}, 0.1)).Drag
	back := r.Evaluate(NewFlightState(Deg2rad(170), [2]float64{50, 0}, 0.1)).Drag
	if back.Pressure <= fwd.Pressure {
		t.Fatal("the base must add pressure drag when flying backwards")
	}
	if back.Scale >= 0 || fwd.Scale <= 0 {
		t.Fatal("CA must flip sign past 90°")
	}
	if s := r.Evaluate(NewFlightState(math.Pi/2, [2]float64{50, 0}, 0.1)).Drag.Scale; s != 0 {
		t.Fatalf("no axial drag at 90°, got scale %f", s)
	}
}

func TestRocketCPFallback(t *testing.T) {
	r := bareRocket(t, coneCylinder())
	n := normalForce{bodyCNα: make([]float64, 2)}
	if cp := r.centerOfPressure(n); cp != r.body.centroid[0] {
		t.Fatalf("CP without slope should be the nose centroid, got %f", cp)
	}
}

func TestRocketFinsDisabled(t *testing.T) {
	v := finnedVehicle()
	v.Fins = false
	v.FinPoints = FinPoints{} // ignored without fins
	r, err := NewRocket(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.UseFins() {
		t.Fatal("fins should be disabled")
	}
	withFins, _ := NewRocket(finnedVehicle(), nil)
	s := NewFlightState(Deg2rad(5), [2]float64{30, 0}, 0.2)
	if math.Abs(r.Evaluate(s).CN) >= math.Abs(withFins.Evaluate(s).CN) {
		t.Fatal("fins must add normal force")
	}
	if r.Evaluate(s).CP >= withFins.Evaluate(s).CP {
		t.Fatal("tail fins must move the CP aft")
	}
}

func TestRocketNoControlFins(t *testing.T) {
	v := finnedVehicle()
	v.ControlFins = false
	r, err := NewRocket(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, ctrl := r.Fins()
	if ctrl.Area() > 1e-7 {
		t.Fatal("missing control fins must be replaced by a zero area fin")
	}
	a := r.Evaluate(NewFlightState(Deg2rad(5), [2]float64{30, 0}, 0.2))
	if math.IsNaN(a.CN) || math.IsNaN(a.CP) || math.IsNaN(a.CA) {
		t.Fatal("NaN with the zero area fin")
	}
}

func TestRocketErrors(t *testing.T) {
	if _, err := NewRocket(Vehicle{Stations: []Station{{0, 0}, {0, 0.1}}, Xcg: 0.5}, nil); !errors.Is(err, ErrZeroLengthSegment) {
		t.Fatalf("expected ErrZeroLengthSegment, got %v", err)
	}
	for _, xcg := range []float64{0, -1, 3, 4} {
		if _, err := NewRocket(Vehicle{Stations: coneCylinder(), Xcg: xcg}, nil); !errors.Is(err, ErrCGOutsideBody) {
			t.Fatalf("expected ErrCGOutsideBody for xcg=%f, got %v", xcg, err)
		}
	}
	v := finnedVehicle()
	v.ControlPoints = FinPoints{}
	if _, err := NewRocket(v, nil); !errors.Is(err, ErrDegenerateFin) {
		t.Fatalf("expected ErrDegenerateFin, got %v", err)
	}
}

func TestRocketMachClamp(t *testing.T) {
	r, _ := NewRocket(finnedVehicle(), nil)
	s := NewFlightState(Deg2rad(5), [2]float64{30, 0}, 0)
	zero := r.Evaluate(s)
	s.Mach = minMach
	if clamped := r.Evaluate(s); zero != clamped {
		t.Fatal("a zero Mach must be evaluated at the minimum Mach")
	}
}
