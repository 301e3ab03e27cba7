package aerovector

import (
	"fmt"
	"math"
	"strings"
)

// AirfoilTable defines an enum of the fin section data sets.
type AirfoilTable uint8

const (
	// WindTunnelModified is the NACA 0009 data with the stall removed, so that
	// small aspect ratio fins neither stall at 5° nor gain lift indefinitely.
	// This is the default.
	WindTunnelModified AirfoilTable = iota + 1
	// WindTunnel is the raw NACA 0009 data, stalling at about 5°.
	WindTunnel
	// FlatPlate uses a 2π per radian slope, as Open Rocket does. It is only
	// sound for small angles of attack.
	FlatPlate
)

func (t AirfoilTable) String() string {
	switch t {
	case WindTunnelModified:
		return "windtunnel_modified"
	case WindTunnel:
		return "windtunnel"
	case FlatPlate:
		return "2pi"
	}
	panic("cannot stringify unknown airfoil table")
}

// AirfoilTableFromString returns the airfoil table from its name. An empty name is the default table.
func AirfoilTableFromString(name string) (AirfoilTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "windtunnel_modified", "modified":
		return WindTunnelModified, nil
	case "windtunnel", "raw":
		return WindTunnel, nil
	case "2pi", "flatplate", "flat_plate":
		return FlatPlate, nil
	}
	return 0, fmt.Errorf("unknown airfoil table `%s`", name)
}

/* NACA 0009 from "Aerodynamic Characteristics of Seven Symmetrical Airfoil
Sections Through 180-Degree Angle of Attack for Use in Aerodynamic Analysis of
Vertical Axis Wind Turbines". Angles in radians from 0 to π. */

var (
	clRaw = mustTable(
		[]float64{0.0, 0.08386924860853417, 0.1620549165120595,
			0.25889438775510176, 0.4498044063079776, 0.62461094619666,
			0.7766831632653057, 0.9458061224489793, 1.1321255565862705,
			1.3189550556586267, 1.595045918367347, 1.846872263450835,
			2.0253221243042674, 2.2514994897959184, 2.4605532467532463,
			2.6914669294990725, 2.83479517625232, 2.98810612244898,
			3.105202458256029, 3.150015306122449},
		[]float64{0.0, 0.5363636363636364, 0.781818181818182, 0.7,
			0.8818181818181818, 1.0727272727272728, 1.1, 1.0,
			0.7545454545454546, 0.44545454545454555, 0.0,
			-0.418181818181818, -0.6818181818181817, -0.9000000000000004,
			-0.9818181818181819, -0.790909090909091, -0.6727272727272728,
			-0.8000000000000003, -0.40909090909090917, 0.0})

	clModified = mustTable(
		[]float64{0.0, 0.13658937500000003, 0.7249800000000002,
			0.9137768750000002, 1.0950218750000003, 1.57079,
			2.0239025, 2.4166, 2.937679375, 3.103820625},
		[]float64{0.0, 0.7739130434782606, 1.1043478260869564,
			1.026086956521739, 0.8086956521739128, 0.0,
			-0.7217391304347824, -0.991304347826087,
			-0.8086956521739128, -0.008695652173913215})

	cdSection = mustTable(
		[]float64{0, 0.18521494914149783, 0.3982734933252401,
			0.7643841635684416, 1.10988734808282, 1.3509577689207464,
			1.5468165300174515, 1.7918205335344766, 1.960067086805354,
			2.1704261134642255, 2.359869138105717, 2.4862486286726804,
			2.668785095490799, 2.819614501925884, 2.9527883625749265,
			3.040406988525037, 3.1349532075000113, 3.1415972095888027},
		[]float64{0.001, 0.11315179890472304, 0.3266637804448056,
			1.053982763006967, 1.5607557140498007, 1.7623865781756995,
			1.8074741244259172, 1.7606280656808881, 1.5891418548289915,
			1.3457262344177494, 1.0581157136927424, 0.8182796034866748,
			0.47852963361347545, 0.262866375366543, 0.13929739838341826,
			0.05557613600353495, 0.011970382007828295,
			0.0009187156610269724})
)

// AirfoilCoefficients are the 2D coefficients of a fin section at one angle of attack.
// CN and CA are relative to the fin chord.
type AirfoilCoefficients struct {
	CL, CD  float64
	CN, CA  float64
	CNAlpha float64 // normal force slope (1/rad)
}

// Airfoil is the immutable 2D aerodynamic model of a fin section.
type Airfoil struct {
	kind AirfoilTable
	cl   table
}

// NewAirfoil returns the airfoil for the given table. The zero value selects WindTunnelModified.
func NewAirfoil(kind AirfoilTable) Airfoil {
	switch kind {
	case WindTunnel:
		return Airfoil{kind, clRaw}
	case FlatPlate:
		// The slope is forced but CN and CA still follow the stall free data.
		return Airfoil{kind, clModified}
	default:
		return Airfoil{WindTunnelModified, clModified}
	}
}

// Table returns the data set used by this airfoil.
func (a Airfoil) Table() AirfoilTable {
	return a.kind
}

// Coefficients returns the CN, CA and CN slope of the section at the given angle of attack (rad).
// An angle of exactly zero is evaluated at 0.0001 rad so that the slope stays finite.
func (a Airfoil) Coefficients(aoa float64) AirfoilCoefficients {
	aoa = nonZero(aoa)
	// The data spans 0-180°, the sign is restored afterwards.
	x := math.Abs(aoa)
	c := AirfoilCoefficients{CL: a.cl.at(x), CD: cdSection.at(x)}
	sinx, cosx := math.Sin(x), math.Cos(x)
	c.CN = sign(aoa) * (c.CL*cosx + c.CD*sinx)
	// CA always points backwards along the chord, whatever the sign of the aoa.
	c.CA = -c.CL*sinx + c.CD*cosx
	if a.kind == FlatPlate {
		c.CNAlpha = 2 * math.Pi
	} else {
		c.CNAlpha = c.CN / aoa
	}
	return c
}
