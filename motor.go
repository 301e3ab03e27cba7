package aerovector

import (
	"errors"
	"fmt"
	"math"
)

// minThrust keeps the thrust strictly positive for the integrator.
const minThrust = 0.001

// ErrMotorCurve is returned when a thrust curve cannot be interpolated.
var ErrMotorCurve = errors.New("invalid motor thrust curve")

// Thruster defines a motor.
type Thruster interface {
	// Thrust returns the thrust at time t for a motor ignited at ignition.
	Thrust(t, ignition float64) float64
	// BurnoutTime returns the burn time of the motor.
	BurnoutTime() float64
}

/* Available thrusters */

// Motor is a motor defined by a piecewise linear thrust curve.
type Motor struct {
	curve   table
	burnout float64
}

// NewMotor returns a motor from its thrust curve. Both slices are copied.
func NewMotor(time, thrust []float64) (*Motor, error) {
	curve, err := newTable(time, thrust)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMotorCurve, err)
	}
	return &Motor{curve, time[len(time)-1]}, nil
}

// Thrust implements the Thruster interface.
func (m *Motor) Thrust(t, ignition float64) float64 {
	return math.Max(m.curve.at(t-ignition), minThrust)
}

// BurnoutTime implements the Thruster interface. It is the last time of the curve.
func (m *Motor) BurnoutTime() float64 {
	return m.burnout
}

// ConstantThruster is a motor of constant thrust.
type ConstantThruster struct {
	thrust float64
	burn   float64
}

// Thrust implements the Thruster interface.
func (c *ConstantThruster) Thrust(t, ignition float64) float64 {
	if x := t - ignition; x < 0 || x > c.burn {
		return minThrust
	}
	return math.Max(c.thrust, minThrust)
}

// BurnoutTime implements the Thruster interface.
func (c *ConstantThruster) BurnoutTime() float64 {
	return c.burn
}

// NewConstantThruster returns a motor producing thrust during burn seconds.
func NewConstantThruster(thrust, burn float64) *ConstantThruster {
	return &ConstantThruster{thrust, burn}
}

// SetMotor sets the motor of the rocket.
func (r *Rocket) SetMotor(m Thruster) {
	r.motor = m
	if m != nil {
		r.logger.Log("level", "info", "subsys", "motor", "burnout", m.BurnoutTime())
	}
}

// Thrust returns the thrust of the rocket motor, or the minimum thrust without motor.
func (r *Rocket) Thrust(t, ignition float64) float64 {
	if r.motor == nil {
		return minThrust
	}
	return r.motor.Thrust(t, ignition)
}

// BurnoutTime returns the burn time of the rocket motor, zero without motor.
func (r *Rocket) BurnoutTime() float64 {
	if r.motor == nil {
		return 0
	}
	return r.motor.BurnoutTime()
}
