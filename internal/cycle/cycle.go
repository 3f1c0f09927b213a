// Package cycle implements the curing cycle state machine. One controller
// runs one logical flow of control: phases execute strictly in order and
// no component it owns runs concurrently with another.
package cycle

import (
	"time"

	"github.com/sweeney/uv-cure/internal/button"
	"github.com/sweeney/uv-cure/internal/buzzer"
	"github.com/sweeney/uv-cure/internal/config"
	"github.com/sweeney/uv-cure/internal/gpio"
	"github.com/sweeney/uv-cure/internal/logger"
	"github.com/sweeney/uv-cure/internal/relay"
)

// Phase is the controller's position in the curing cycle. Exactly one
// phase is active at any instant.
type Phase int

const (
	// PhaseInit forces the relay into a known-safe state. Entered once,
	// at process start.
	PhaseInit Phase = iota
	// PhaseIdle waits indefinitely for a button press.
	PhaseIdle
	// PhaseDebounced is entered once a press has settled.
	PhaseDebounced
	// PhaseCuring holds the relay closed for the curing duration.
	PhaseCuring
	// PhaseSettling releases the relay and waits for the contacts.
	PhaseSettling
	// PhaseNotifying sounds the completion beeps.
	PhaseNotifying
	// PhaseCooldown holds before the next press is accepted.
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseIdle:
		return "IDLE"
	case PhaseDebounced:
		return "DEBOUNCED"
	case PhaseCuring:
		return "CURING"
	case PhaseSettling:
		return "SETTLING"
	case PhaseNotifying:
		return "NOTIFYING"
	case PhaseCooldown:
		return "COOLDOWN"
	}
	return "UNKNOWN"
}

// Stats accumulates over the controller's lifetime and appears in the
// cycle-complete diagnostic line.
type Stats struct {
	// Cycles is the number of completed curing cycles.
	Cycles int
	// UVOnTotal is the cumulative time the relay was closed.
	UVOnTotal time.Duration
	// StartTime is when the controller entered Init.
	StartTime time.Time
}

// Controller orchestrates one curing cycle at a time. It exclusively owns
// the relay, button, status, and buzzer lines for the process lifetime.
type Controller struct {
	cfg    config.Config
	relay  *relay.Driver
	button *button.Button
	beeper *buzzer.Sequencer
	status gpio.OutputLine
	sleep  func(time.Duration)
	now    func() time.Time
	log    *logger.Logger
	stats  Stats
}

// New returns a controller over the given components. sleep and now may be
// nil, in which case time.Sleep and time.Now are used.
func New(cfg config.Config, rly *relay.Driver, btn *button.Button, beeper *buzzer.Sequencer, status gpio.OutputLine, sleep func(time.Duration), now func() time.Time, log *logger.Logger) *Controller {
	if sleep == nil {
		sleep = time.Sleep
	}
	if now == nil {
		now = time.Now
	}
	return &Controller{
		cfg:    cfg,
		relay:  rly,
		button: btn,
		beeper: beeper,
		status: status,
		sleep:  sleep,
		now:    now,
		log:    log,
	}
}

// Run steps the machine forever, starting from Init. It never returns;
// the only way out is process reset, which re-enters Init on the next
// start and re-forces the safe relay state.
func (c *Controller) Run() {
	for p := PhaseInit; ; {
		p = c.Step(p)
	}
}

// Step executes the entry action of the given phase and returns its
// successor. Presses are only observed in Idle: no other phase touches
// the button, so a press during an active cycle never triggers another.
func (c *Controller) Step(p Phase) Phase {
	switch p {
	case PhaseInit:
		c.stats.StartTime = c.now()
		c.relay.ResetSafe()
		c.status.Set(false)
		c.log.Infof("relay forced safe (%s), ready: cure=%v debounce=%v settle=%v beeps=%d cooldown=%v",
			c.relay.State(), c.cfg.CuringDuration, c.cfg.ButtonDebounce,
			c.cfg.RelaySettle, c.cfg.CompletionBeeps, c.cfg.CycleCooldown)
		return PhaseIdle

	case PhaseIdle:
		c.status.Set(false)
		c.button.WaitForPress()
		c.log.Infof("button pressed")
		return PhaseDebounced

	case PhaseDebounced:
		// Settling already absorbed by the button layer.
		return PhaseCuring

	case PhaseCuring:
		c.relay.Close()
		c.status.Set(true)
		c.log.Infof("relay closed, UV on for %v", c.cfg.CuringDuration)
		c.sleep(c.cfg.CuringDuration)
		return PhaseSettling

	case PhaseSettling:
		c.relay.OpenAndSettle()
		c.status.Set(false)
		c.log.Infof("relay opened (%s), UV off", c.relay.State())
		return PhaseNotifying

	case PhaseNotifying:
		c.beeper.SoundCompletion()
		return PhaseCooldown

	case PhaseCooldown:
		c.sleep(c.cfg.CycleCooldown)
		c.stats.Cycles++
		c.stats.UVOnTotal += c.cfg.CuringDuration
		c.log.Infof("cycle %d complete: uv_on_total=%v uptime=%v",
			c.stats.Cycles, c.stats.UVOnTotal, c.now().Sub(c.stats.StartTime))
		return PhaseIdle
	}

	// Unreachable for phases produced by Step itself.
	return PhaseInit
}

// Stats returns a copy of the lifetime stats.
func (c *Controller) Stats() Stats { return c.stats }
