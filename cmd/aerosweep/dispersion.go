package main

import (
	"context"
	"fmt"

	aero "github.com/Code-Assembly/AeroVECTOR"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// summary is the mean and standard deviation of the dispersed coefficients.
type summary struct {
	cnMean, cnStd float64
	cpMean, cpStd float64
	caMean, caStd float64
}

func (s summary) String() string {
	return fmt.Sprintf("CN=%.5f±%.5f CP=%.5f±%.5f CA=%.5f±%.5f", s.cnMean, s.cnStd, s.cpMean, s.cpStd, s.caMean, s.caStd)
}

// dispersedStates draws flight states with a normally distributed aoa and Mach.
func dispersedStates(d dispersion, base aero.FlightState) ([]aero.FlightState, error) {
	σα := aero.Deg2rad(d.aoaSigma)
	cov := mat.NewSymDense(2, []float64{σα * σα, 0, 0, d.machSigma * d.machSigma})
	normal, ok := distmv.NewNormal([]float64{aero.Deg2rad(d.aoa), base.Mach}, cov, rand.NewSource(d.seed))
	if !ok {
		return nil, fmt.Errorf("dispersion covariance is not positive definite")
	}
	states := make([]aero.FlightState, d.samples)
	sample := make([]float64, 2)
	for i := range states {
		normal.Rand(sample)
		states[i] = base
		states[i].AoA = sample[0]
		states[i].Mach = sample[1]
	}
	return states, nil
}

// monteCarlo evaluates the dispersed states and summarizes them.
func monteCarlo(ctx context.Context, batch *aero.Batch, r *aero.Rocket, d dispersion, base aero.FlightState) (summary, error) {
	states, err := dispersedStates(d, base)
	if err != nil {
		return summary{}, err
	}
	results, err := batch.Evaluate(ctx, r, states)
	if err != nil {
		return summary{}, err
	}
	cn := make([]float64, len(results))
	cp := make([]float64, len(results))
	ca := make([]float64, len(results))
	for i, a := range results {
		cn[i], cp[i], ca[i] = a.CN, a.CP, a.CA
	}
	var s summary
	s.cnMean, s.cnStd = stat.MeanStdDev(cn, nil)
	s.cpMean, s.cpStd = stat.MeanStdDev(cp, nil)
	s.caMean, s.caStd = stat.MeanStdDev(ca, nil)
	return s, nil
}
