package aerovector

// padClearance is the altitude above which the rocket has left the pad.
const padClearance = 0.2

// Pad latches the departure of the rocket from the launch pad.
// The zero value is a rocket on the pad.
type Pad struct {
	left bool
}

// OnPad returns whether the rocket is still on the pad. Once the altitude
// exceeds the clearance, it returns false until Reset.
func (p *Pad) OnPad(alt float64) bool {
	if !p.left && alt > padClearance {
		p.left = true
	}
	return !p.left
}

// Reset puts the rocket back on the pad.
func (p *Pad) Reset() {
	p.left = false
}

// IsOnPad returns whether the rocket is on the pad at this altitude.
func (r *Rocket) IsOnPad(alt float64) bool {
	was := !r.pad.left
	on := r.pad.OnPad(alt)
	if was && !on {
		r.logger.Log("level", "notice", "subsys", "pad", "status", "liftoff", "alt", alt)
	}
	return on
}

// Reset removes the motor and puts the rocket back on the pad.
func (r *Rocket) Reset() {
	r.motor = nil
	r.pad.Reset()
}
