package trig

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Domain is the length of the sampled angle range: two full turns.
const Domain = 4 * math.Pi

// Playback speed bounds, in radians per second.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 2.0
	DefaultSpeed = 1.0
	SpeedStep    = 0.1
)

// InitialAngle is the angle shown at startup (45°).
const InitialAngle = 0.785

// ErrInvalidSpeed is returned for zero, negative or non-finite speeds.
var ErrInvalidSpeed = errors.New("speed must be a positive finite number")

// Wrap reduces angle into [0, 4π).
func Wrap(angle float64) float64 {
	a := math.Mod(angle, Domain)
	if a < 0 {
		a += Domain
	}
	// math.Mod of a tiny negative value plus Domain can round up to Domain.
	if a >= Domain {
		a = 0
	}
	return a
}

// ValidateSpeed rejects speeds that cannot drive the clock forward.
func ValidateSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	return nil
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed]. Non-positive and NaN
// speeds become MinSpeed so the rotation never reverses.
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) || speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Advance integrates the angle over dt seconds at the given speed and
// wraps the result into [0, 4π).
func Advance(angle, dt, speed float64) float64 {
	if dt <= 0 {
		return Wrap(angle)
	}
	return Wrap(angle + dt*ClampSpeed(speed))
}

// Clock holds the playback state that drives the angle. It is owned by a
// single goroutine (the UI loop) and is not safe for concurrent use.
type Clock struct {
	angle   float64
	speed   float64
	playing bool
	last    time.Time
}

// NewClock returns a paused clock at angle with the given speed.
func NewClock(angle, speed float64) *Clock {
	return &Clock{angle: Wrap(angle), speed: ClampSpeed(speed)}
}

// Angle returns the current wrapped angle.
func (c *Clock) Angle() float64 { return c.angle }

// Speed returns the current speed.
func (c *Clock) Speed() float64 { return c.speed }

// Playing reports whether ticks advance the angle.
func (c *Clock) Playing() bool { return c.playing }

// Play resumes advancing. The next Tick only records the time reference.
func (c *Clock) Play() {
	c.playing = true
	c.last = time.Time{}
}

// Pause stops advancing and drops the time reference.
func (c *Clock) Pause() {
	c.playing = false
	c.last = time.Time{}
}

// Toggle flips between playing and paused.
func (c *Clock) Toggle() {
	if c.playing {
		c.Pause()
		return
	}
	c.Play()
}

// Tick advances the angle by the time elapsed since the previous tick.
// It returns true when the angle changed.
func (c *Clock) Tick(now time.Time) bool {
	if !c.playing {
		return false
	}
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return false
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	c.angle = Advance(c.angle, dt, c.speed)
	return dt > 0
}

// Step advances by a fixed dt regardless of wall time. Used for
// deterministic stepping; it ignores the playing flag.
func (c *Clock) Step(dt float64) {
	c.angle = Advance(c.angle, dt, c.speed)
}

// SetAngle scrubs to angle and pauses playback.
func (c *Clock) SetAngle(angle float64) {
	c.angle = Wrap(angle)
	c.Pause()
}

// Nudge scrubs by delta radians and pauses playback.
func (c *Clock) Nudge(delta float64) {
	c.SetAngle(c.angle + delta)
}

// Reset returns to angle 0, paused.
func (c *Clock) Reset() {
	c.SetAngle(0)
}

// SetSpeed changes the speed, clamped into range.
func (c *Clock) SetSpeed(speed float64) {
	c.speed = ClampSpeed(speed)
}

// AdjustSpeed changes the speed by delta, snapped to SpeedStep.
func (c *Clock) AdjustSpeed(delta float64) {
	s := math.Round((c.speed+delta)/SpeedStep) * SpeedStep
	c.SetSpeed(s)
}
