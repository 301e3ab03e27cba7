package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	aero "github.com/Code-Assembly/AeroVECTOR"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var csvHeader = []string{"aoa_deg", "cn", "cp", "ca", "cd0", "reynolds", "cf"}

// writeCSV exports one row per flight state.
func writeCSV(path string, states []aero.FlightState, results []aero.Aero) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for i, a := range results {
		row := []string{
			strconv.FormatFloat(aero.Rad2deg(states[i].AoA), 'f', 3, 64),
			strconv.FormatFloat(a.CN, 'g', -1, 64),
			strconv.FormatFloat(a.CP, 'g', -1, 64),
			strconv.FormatFloat(a.CA, 'g', -1, 64),
			strconv.FormatFloat(a.Drag.CD0, 'g', -1, 64),
			strconv.FormatFloat(a.Drag.Reynolds, 'g', -1, 64),
			strconv.FormatFloat(a.Drag.Cf, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// plotSweep saves the CN, CA and CP (in calibers) versus aoa.
func plotSweep(path, name string, caliber float64, states []aero.FlightState, results []aero.Aero) error {
	cn := make(plotter.XYs, len(results))
	ca := make(plotter.XYs, len(results))
	cp := make(plotter.XYs, len(results))
	for i, a := range results {
		deg := aero.Rad2deg(states[i].AoA)
		cn[i].X, cn[i].Y = deg, a.CN
		ca[i].X, ca[i].Y = deg, a.CA
		cp[i].X, cp[i].Y = deg, a.CP/caliber
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s aerodynamics", name)
	p.X.Label.Text = "AoA (deg)"
	p.Y.Label.Text = "coefficient / CP (cal)"
	p.Legend.Top = true
	if err := plotutil.AddLines(p, "CN", cn, "CA", ca, "CP", cp); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
