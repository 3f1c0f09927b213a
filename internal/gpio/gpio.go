// Package gpio provides GPIO line access with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementations allow testing without hardware.
package gpio

// FlexLine is a single bidirectional GPIO line. It is used for the relay
// control line, which needs all three electrical states: floating
// (input mode, no driven level), driven high, and driven low.
type FlexLine interface {
	// Float puts the line in input mode, presenting no driven voltage.
	Float()

	// DriveHigh puts the line in output mode at logic high.
	DriveHigh()

	// DriveLow puts the line in output mode at logic low.
	DriveLow()
}

// EdgeWaiter delivers falling edges from an input line. The button line
// idles high via pull-up, so a press is a falling edge.
type EdgeWaiter interface {
	// WaitForFallingEdge blocks until the line falls. It does not poll.
	WaitForFallingEdge()

	// Flush discards edges already latched but not yet consumed,
	// e.g. contact bounce queued during a debounce window.
	Flush()
}

// OutputLine drives a simple on/off output (status LED, buzzer).
type OutputLine interface {
	Set(on bool)
}

// Default pin assignments (BCM numbering), matching the fixture wiring.
const (
	DefaultPinButton = 6  // momentary switch to ground, pull-up
	DefaultPinRelay  = 10 // SRD-05VDC-SL-C relay module input
	DefaultPinStatus = 25 // status LED
	DefaultPinBuzzer = 7  // piezo buzzer
)

// DefaultChip is the GPIO character device name on a Raspberry Pi.
const DefaultChip = "gpiochip0"
