package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	aero "github.com/Code-Assembly/AeroVECTOR"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// This tool reads a scenario, sweeps the angle of attack and exports the coefficients.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file (or set AEROVECTOR_CONFIG)")
	flag.BoolVar(&verbose, "verbose", false, "log the rocket configuration")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		scenario = os.Getenv("AEROVECTOR_CONFIG")
	}
	if scenario == "" || scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	viper.AddConfigPath(filepath.Dir(scenario))
	viper.SetConfigName(strings.TrimSuffix(filepath.Base(scenario), ".toml"))
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("%s: Error %s", scenario, err)
	}

	klog := kitlog.NewNopLogger()
	if verbose {
		klog = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	}
	rocket, err := aero.NewRocket(readVehicle(), klog)
	if err != nil {
		log.Fatalf("could not build the rocket: %s", err)
	}
	if motor, ignition, ok := readMotor(); ok {
		rocket.SetMotor(motor)
		log.Printf("[motor] ignition %.2f s, burnout %.2f s, thrust at 10%% burn %.2f N", ignition, rocket.BurnoutTime(),
			rocket.Thrust(ignition+0.1*rocket.BurnoutTime(), ignition))
	}

	base, sw := readFlight()
	log.Printf("[damping] body %.6g, fins %.6g", rocket.PitchDampingBody(), rocket.PitchDampingFins(base.Velocity[0]))
	states := aero.SweepAoA(aero.Deg2rad(sw.from), aero.Deg2rad(sw.to), aero.Deg2rad(sw.step), base)
	if len(states) == 0 {
		log.Fatalf("empty aoa sweep %+v", sw)
	}
	disp := readDispersion()
	batch := aero.NewBatch(disp.workers, klog)
	ctx := context.Background()
	results, err := batch.Evaluate(ctx, rocket, states)
	if err != nil {
		log.Fatalf("sweep failed: %s", err)
	}

	if path := viper.GetString("output.csv"); path != "" {
		if err := writeCSV(path, states, results); err != nil {
			log.Fatalf("could not write %s: %s", path, err)
		}
		log.Printf("[output] %d states written to %s", len(states), path)
	}
	if path := viper.GetString("output.png"); path != "" {
		if err := plotSweep(path, rocket.Name, rocket.Body().MaxDiameter(), states, results); err != nil {
			log.Fatalf("could not plot %s: %s", path, err)
		}
		log.Printf("[output] plot saved to %s", path)
	}

	if disp.samples > 0 {
		s, err := monteCarlo(ctx, batch, rocket, disp, base)
		if err != nil {
			log.Fatalf("dispersion failed: %s", err)
		}
		log.Printf("[dispersion] %d samples around %.1f°: %s", disp.samples, disp.aoa, s)
	}
}
