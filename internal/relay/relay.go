// Package relay drives the UV relay through a single tri-state GPIO line.
//
// The relay module used here (SRD-05VDC-SL-C behind a transistor input)
// does not reliably release when its input is merely driven high: residual
// drive current can hold the coil in. Putting the line in input mode
// (high-impedance, no driven voltage) is the only state that guarantees
// the relay opens, so every de-energize path goes through input mode.
// This distinction is kept type-visible as LineState rather than a bool.
package relay

import (
	"time"

	"github.com/sweeney/uv-cure/internal/gpio"
)

// LineState is the electrical state of the relay control line.
type LineState int

const (
	// HighImpedance is input mode, no driven voltage. Relay open, UV off.
	HighImpedance LineState = iota
	// DrivenOpen is output mode at logic high. Relay open, UV off.
	DrivenOpen
	// DrivenClosed is output mode at logic low. Relay energized, UV on.
	DrivenClosed
)

func (s LineState) String() string {
	switch s {
	case HighImpedance:
		return "HIGH_IMPEDANCE"
	case DrivenOpen:
		return "DRIVEN_OPEN"
	case DrivenClosed:
		return "DRIVEN_CLOSED"
	}
	return "UNKNOWN"
}

// Energized reports whether the state corresponds to the relay coil being
// energized (UV on).
func (s LineState) Energized() bool { return s == DrivenClosed }

// Driver actuates the relay. It is the sole writer of the relay line.
type Driver struct {
	line   gpio.FlexLine
	settle time.Duration
	sleep  func(time.Duration)
	state  LineState
}

// New returns a driver over the given line with the given settle time.
// sleep may be nil, in which case time.Sleep is used.
func New(line gpio.FlexLine, settle time.Duration, sleep func(time.Duration)) *Driver {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Driver{
		line:   line,
		settle: settle,
		sleep:  sleep,
	}
}

// ResetSafe forces the relay open regardless of how the line powered up:
// float the line, hold for the settle time so the contacts finish moving,
// then drive it high. Called exactly once, before any button handling.
func (d *Driver) ResetSafe() {
	d.line.Float()
	d.state = HighImpedance
	d.sleep(d.settle)
	d.line.DriveHigh()
	d.state = DrivenOpen
}

// Close energizes the relay (UV on). No settle is needed on close.
func (d *Driver) Close() {
	d.line.DriveLow()
	d.state = DrivenClosed
}

// OpenAndSettle de-energizes the relay by floating the line, never by
// driving it high, and holds for the settle time before returning.
func (d *Driver) OpenAndSettle() {
	d.line.Float()
	d.state = HighImpedance
	d.sleep(d.settle)
}

// State returns the current line state.
func (d *Driver) State() LineState { return d.state }
