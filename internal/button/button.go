// Package button turns a noisy mechanical switch into one logical press
// event per physical press.
package button

import (
	"time"

	"github.com/sweeney/uv-cure/internal/gpio"
)

// Button is a debounced press source over a falling-edge input line.
type Button struct {
	line     gpio.EdgeWaiter
	debounce time.Duration
	sleep    func(time.Duration)
}

// New returns a debounced button with the given settling window.
// sleep may be nil, in which case time.Sleep is used.
func New(line gpio.EdgeWaiter, debounce time.Duration, sleep func(time.Duration)) *Button {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Button{
		line:     line,
		debounce: debounce,
		sleep:    sleep,
	}
}

// WaitForPress blocks until the button is pressed, then holds for the
// debounce window and discards any edges the contacts bounced in during
// it. Edges latched before the wait begins are discarded first: a press
// that landed while the caller was busy elsewhere must not satisfy this
// wait. It returns at most once per physical press and consumes no CPU
// while idle.
func (b *Button) WaitForPress() {
	b.line.Flush()
	b.line.WaitForFallingEdge()
	b.sleep(b.debounce)
	b.line.Flush()
}
