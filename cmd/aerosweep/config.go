package main

import (
	"fmt"
	"log"

	aero "github.com/Code-Assembly/AeroVECTOR"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// sweep is the aoa range of the study, in degrees.
type sweep struct {
	from, to, step float64
}

// dispersion defines the Monte-Carlo study around a nominal aoa and Mach.
type dispersion struct {
	samples   int
	aoa       float64 // nominal aoa (deg)
	aoaSigma  float64 // deg
	machSigma float64
	seed      uint64
	workers   int
}

func readVehicle() aero.Vehicle {
	airfoil, err := aero.AirfoilTableFromString(viper.GetString("rocket.airfoil"))
	if err != nil {
		log.Fatalf("rocket.airfoil: %s", err)
	}
	pairs, err := readPairs("body.stations")
	if err != nil {
		log.Fatalf("body.stations: %s", err)
	}
	stations := make([]aero.Station, len(pairs))
	for i, p := range pairs {
		stations[i] = aero.Station{X: p[0], D: p[1]}
	}
	v := aero.Vehicle{
		Name:            viper.GetString("rocket.name"),
		Stations:        stations,
		Ogive:           viper.GetBool("rocket.ogive"),
		Xcg:             viper.GetFloat64("rocket.xcg"),
		Airfoil:         airfoil,
		Roughness:       viper.GetFloat64("rocket.roughness"),
		Fins:            viper.GetBool("fins.enabled"),
		FinsAttached:    viper.GetBool("fins.attached"),
		ControlFins:     viper.GetBool("control.enabled"),
		ControlAttached: viper.GetBool("control.attached"),
	}
	if v.Fins {
		v.FinPoints = confReadFin("fins.points")
	}
	if v.ControlFins {
		v.ControlPoints = confReadFin("control.points")
	}
	return v
}

// readMotor returns the motor and its ignition time (s).
func readMotor() (aero.Thruster, float64, bool) {
	ignition := viper.GetFloat64("motor.ignition")
	if !viper.IsSet("motor.time") {
		if viper.IsSet("motor.thrust") {
			return aero.NewConstantThruster(viper.GetFloat64("motor.thrust"), viper.GetFloat64("motor.burn")), ignition, true
		}
		return nil, 0, false
	}
	tm, err := readFloats("motor.time")
	if err != nil {
		log.Fatalf("motor.time: %s", err)
	}
	th, err := readFloats("motor.thrust")
	if err != nil {
		log.Fatalf("motor.thrust: %s", err)
	}
	m, err := aero.NewMotor(tm, th)
	if err != nil {
		log.Fatalf("motor: %s", err)
	}
	return m, ignition, true
}

func readFlight() (aero.FlightState, sweep) {
	vel, err := readFloats("flight.velocity")
	if err != nil || len(vel) != 2 {
		log.Fatalf("flight.velocity must be two numbers: %v", err)
	}
	viper.SetDefault("flight.rho", aero.SeaLevelDensity)
	viper.SetDefault("flight.mu", aero.SeaLevelViscosity)
	viper.SetDefault("flight.aoa_from", -180)
	viper.SetDefault("flight.aoa_to", 180)
	viper.SetDefault("flight.aoa_step", 1)
	s := aero.FlightState{
		Velocity: [2]float64{vel[0], vel[1]},
		Rho:      viper.GetFloat64("flight.rho"),
		Mu:       viper.GetFloat64("flight.mu"),
		Mach:     viper.GetFloat64("flight.mach"),
		Actuator: aero.Deg2rad(viper.GetFloat64("flight.actuator")),
		Q:        viper.GetFloat64("flight.q"),
	}
	return s, sweep{viper.GetFloat64("flight.aoa_from"), viper.GetFloat64("flight.aoa_to"), viper.GetFloat64("flight.aoa_step")}
}

func readDispersion() dispersion {
	viper.SetDefault("dispersion.seed", 1)
	return dispersion{
		samples:   viper.GetInt("dispersion.samples"),
		aoa:       viper.GetFloat64("dispersion.aoa"),
		aoaSigma:  viper.GetFloat64("dispersion.aoa_sigma"),
		machSigma: viper.GetFloat64("dispersion.mach_sigma"),
		seed:      uint64(viper.GetInt64("dispersion.seed")),
		workers:   viper.GetInt("dispersion.workers"),
	}
}

func confReadFin(key string) (points aero.FinPoints) {
	pairs, err := readPairs(key)
	if err != nil {
		log.Fatalf("%s: %s", key, err)
	}
	if len(pairs) != 4 {
		log.Fatalf("%s: a fin has 4 points, got %d", key, len(pairs))
	}
	for i, p := range pairs {
		points[i] = p
	}
	return
}

// readFloats reads a list of numbers, TOML integers included.
func readFloats(key string) ([]float64, error) {
	raw, err := cast.ToSliceE(viper.Get(key))
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(raw))
	for i, r := range raw {
		if vals[i], err = cast.ToFloat64E(r); err != nil {
			return nil, fmt.Errorf("item %d: %s", i, err)
		}
	}
	return vals, nil
}

// readPairs reads a list of [a, b] pairs.
func readPairs(key string) ([][2]float64, error) {
	raw, err := cast.ToSliceE(viper.Get(key))
	if err != nil {
		return nil, err
	}
	pairs := make([][2]float64, len(raw))
	for i, r := range raw {
		pair, err := cast.ToSliceE(r)
		if err != nil || len(pair) != 2 {
			return nil, fmt.Errorf("item %d is not a pair", i)
		}
		for j := range pair {
			if pairs[i][j], err = cast.ToFloat64E(pair[j]); err != nil {
				return nil, fmt.Errorf("item %d: %s", i, err)
			}
		}
	}
	return pairs, nil
}
