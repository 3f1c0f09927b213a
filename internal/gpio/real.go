//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/sweeney/uv-cure/internal/logger"
)

// edgeBuffer bounds how many button edges can be latched while the
// controller is busy. Edges beyond this are dropped, which is harmless:
// presses during an active cycle are ignored anyway.
const edgeBuffer = 16

// Lines owns the four GPIO lines of the curing fixture via the Linux GPIO
// character device.
type Lines struct {
	chip   *gpiocdev.Chip
	button *gpiocdev.Line
	relay  *gpiocdev.Line
	status *gpiocdev.Line
	buzzer *gpiocdev.Line

	edges chan struct{}
	log   *logger.Logger
}

// Open requests the four lines from the named chip. The relay line is
// requested in input mode so it floats until the controller forces the
// safe state; the status and buzzer lines start low.
func Open(chipName string, pinButton, pinRelay, pinStatus, pinBuzzer int, log *logger.Logger) (*Lines, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	l := &Lines{
		chip:  chip,
		edges: make(chan struct{}, edgeBuffer),
		log:   log,
	}

	l.button, err = chip.RequestLine(pinButton,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(l.onButtonEvent))
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("request button pin %d: %w", pinButton, err)
	}

	l.relay, err = chip.RequestLine(pinRelay, gpiocdev.AsInput)
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("request relay pin %d: %w", pinRelay, err)
	}

	l.status, err = chip.RequestLine(pinStatus, gpiocdev.AsOutput(0))
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("request status pin %d: %w", pinStatus, err)
	}

	l.buzzer, err = chip.RequestLine(pinBuzzer, gpiocdev.AsOutput(0))
	if err != nil {
		l.Close()
		return nil, fmt.Errorf("request buzzer pin %d: %w", pinBuzzer, err)
	}

	return l, nil
}

func (l *Lines) onButtonEvent(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventFallingEdge {
		return
	}
	select {
	case l.edges <- struct{}{}:
	default:
		// Buffer full; stale edges are flushed before the next
		// wait anyway, so dropping here loses nothing.
	}
}

// Button returns the button line as an edge source.
func (l *Lines) Button() EdgeWaiter { return (*buttonLine)(l) }

// Relay returns the relay control line.
func (l *Lines) Relay() FlexLine { return (*relayLine)(l) }

// Status returns the status LED line.
func (l *Lines) Status() OutputLine { return &outputLine{line: l.status, name: "status", log: l.log} }

// Buzzer returns the buzzer line.
func (l *Lines) Buzzer() OutputLine { return &outputLine{line: l.buzzer, name: "buzzer", log: l.log} }

// Close refloats the relay line, then releases all lines and the chip.
// The relay line is left in input mode so the coil cannot stay energized
// across a restart.
func (l *Lines) Close() error {
	var errs []error

	if l.relay != nil {
		if err := l.relay.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("refloat relay pin: %w", err))
		}
	}
	for _, line := range []*gpiocdev.Line{l.button, l.relay, l.status, l.buzzer} {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close line: %w", err))
		}
	}
	if l.chip != nil {
		if err := l.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// buttonLine adapts Lines to the EdgeWaiter interface.
type buttonLine Lines

func (b *buttonLine) WaitForFallingEdge() {
	<-b.edges
}

func (b *buttonLine) Flush() {
	for {
		select {
		case <-b.edges:
		default:
			return
		}
	}
}

// relayLine adapts Lines to the FlexLine interface. GPIO reconfiguration
// is treated as infallible above this layer; failures are logged and the
// sequence continues.
type relayLine Lines

func (r *relayLine) Float() {
	if err := r.relay.Reconfigure(gpiocdev.AsInput); err != nil {
		r.log.Errorf("relay line: reconfigure as input: %v", err)
	}
}

func (r *relayLine) DriveHigh() {
	if err := r.relay.Reconfigure(gpiocdev.AsOutput(1)); err != nil {
		r.log.Errorf("relay line: drive high: %v", err)
	}
}

func (r *relayLine) DriveLow() {
	if err := r.relay.Reconfigure(gpiocdev.AsOutput(0)); err != nil {
		r.log.Errorf("relay line: drive low: %v", err)
	}
}

// outputLine adapts a single output line to the OutputLine interface.
type outputLine struct {
	line *gpiocdev.Line
	name string
	log  *logger.Logger
}

func (o *outputLine) Set(on bool) {
	v := 0
	if on {
		v = 1
	}
	if err := o.line.SetValue(v); err != nil {
		o.log.Errorf("%s line: set %d: %v", o.name, v, err)
	}
}
