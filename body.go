package aerovector

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Tangent ogive approximation of the nose centroid and planform area.
	ogiveCentroid = 0.4625
	ogivePlanArea = 2. / 3
)

var (
	// ErrTooFewStations is returned when the body has less than two stations.
	ErrTooFewStations = errors.New("body needs at least two stations")
	// ErrZeroLengthSegment is returned when two consecutive stations are not strictly increasing.
	ErrZeroLengthSegment = errors.New("body segment has no length")
	// ErrZeroDiameter is returned when every station has a zero diameter.
	ErrZeroDiameter = errors.New("body has no diameter")
)

// Station is a point of the outer mold line: a longitudinal position and a diameter.
type Station struct {
	X, D float64
}

// Body is the outer mold line of a rocket, split into conical frustums between stations.
// All derived quantities are computed once by NewBody.
type Body struct {
	stations  []Station
	ogive     bool
	crossArea []float64 // one per station, the first one is the tip
	planArea  []float64 // one per segment
	volume    []float64
	centroid  []float64 // from the fore station of the segment
	wetArea   []float64
	refArea   float64
	maxDiam   float64
	length    float64
	fineness  float64
	totalPlan float64
	totalWet  float64
}

// NewBody returns the body defined by the stations, from the nose tip down to the base.
// With ogive set, the first segment is a tangent ogive instead of a cone.
func NewBody(stations []Station, ogive bool) (Body, error) {
	n := len(stations)
	if n < 2 {
		return Body{}, fmt.Errorf("%w: got %d", ErrTooFewStations, n)
	}
	b := Body{
		stations:  append([]Station(nil), stations...),
		ogive:     ogive,
		crossArea: make([]float64, n),
		planArea:  make([]float64, n-1),
		volume:    make([]float64, n-1),
		centroid:  make([]float64, n-1),
		wetArea:   make([]float64, n-1),
	}
	diameters := make([]float64, n)
	for i, s := range b.stations {
		diameters[i] = s.D
		if i > 0 && s.X <= b.stations[i-1].X {
			return Body{}, fmt.Errorf("%w: between stations %d and %d", ErrZeroLengthSegment, i-1, i)
		}
	}
	b.maxDiam = floats.Max(diameters)
	if b.maxDiam <= 0 {
		return Body{}, ErrZeroDiameter
	}
	b.length = b.stations[n-1].X
	b.fineness = b.length / b.maxDiam
	// The reference area is the largest one, not the base of the nose.
	rMax := b.maxDiam / 2
	b.refArea = math.Pi * (rMax * rMax)
	for i := 0; i < n-1; i++ {
		l := b.stations[i+1].X - b.stations[i].X
		r1 := b.stations[i].D / 2
		r2 := b.stations[i+1].D / 2
		b.crossArea[i+1] = math.Pi * (r2 * r2)
		b.planArea[i] = l * (r1 + r2)
		b.volume[i] = (1. / 3) * math.Pi * l * (r1*r1 + r2*r2 + r1*r2)
		if r1+r2 != 0 {
			b.centroid[i] = (l * (2*r2 + r1)) / (3 * (r1 + r2))
		} else {
			b.centroid[i] = l / 2
		}
		b.wetArea[i] = math.Pi * (r1 + r2) * math.Sqrt((r2-r1)*(r2-r1)+l*l)
	}
	if ogive {
		l := b.stations[1].X - b.stations[0].X
		b.centroid[0] = ogiveCentroid * l
		b.planArea[0] = ogivePlanArea * l * b.stations[1].D
	}
	b.totalPlan = floats.Sum(b.planArea)
	b.totalWet = floats.Sum(b.wetArea)
	return b, nil
}

// Ogive returns whether the nose is a tangent ogive.
func (b Body) Ogive() bool { return b.ogive }

// NumStations returns the number of stations, i.e. one more than the number of segments.
func (b Body) NumStations() int { return len(b.stations) }

// Station returns the i-th station.
func (b Body) Station(i int) Station { return b.stations[i] }

// CrossArea returns the cross-sectional area at the i-th station.
func (b Body) CrossArea(i int) float64 { return b.crossArea[i] }

// SegmentPlanArea returns the planform area of the i-th segment.
func (b Body) SegmentPlanArea(i int) float64 { return b.planArea[i] }

// SegmentVolume returns the volume of the i-th segment.
func (b Body) SegmentVolume(i int) float64 { return b.volume[i] }

// SegmentCentroid returns the absolute longitudinal position of the centroid of the i-th segment.
func (b Body) SegmentCentroid(i int) float64 { return b.stations[i].X + b.centroid[i] }

// SegmentWetArea returns the lateral area of the i-th segment.
func (b Body) SegmentWetArea(i int) float64 { return b.wetArea[i] }

// ReferenceArea returns the cross-sectional area at the maximum diameter.
func (b Body) ReferenceArea() float64 { return b.refArea }

// Length returns the position of the base.
func (b Body) Length() float64 { return b.length }

// MaxDiameter returns the largest station diameter.
func (b Body) MaxDiameter() float64 { return b.maxDiam }

// Fineness returns the length over the maximum diameter.
func (b Body) Fineness() float64 { return b.fineness }

// PlanformArea returns the total planform area.
func (b Body) PlanformArea() float64 { return b.totalPlan }

// WetArea returns the total lateral area.
func (b Body) WetArea() float64 { return b.totalWet }

// Volume returns the total volume.
func (b Body) Volume() float64 { return floats.Sum(b.volume) }
