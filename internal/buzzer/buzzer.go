// Package buzzer produces the audible completion signal.
package buzzer

import (
	"time"

	"github.com/sweeney/uv-cure/internal/gpio"
	"github.com/sweeney/uv-cure/internal/logger"
)

// Sequencer drives the buzzer line through a fixed pulse sequence.
type Sequencer struct {
	line     gpio.OutputLine
	beeps    int
	duration time.Duration
	pause    time.Duration
	sleep    func(time.Duration)
	log      *logger.Logger
}

// New returns a sequencer producing beeps pulses of the given width and
// spacing. sleep may be nil, in which case time.Sleep is used.
func New(line gpio.OutputLine, beeps int, duration, pause time.Duration, sleep func(time.Duration), log *logger.Logger) *Sequencer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Sequencer{
		line:     line,
		beeps:    beeps,
		duration: duration,
		pause:    pause,
		sleep:    sleep,
		log:      log,
	}
}

// SoundCompletion drives the configured pulse sequence in strict order
// and returns only after the last pause completes.
func (s *Sequencer) SoundCompletion() {
	for i := 1; i <= s.beeps; i++ {
		s.log.Infof("beep %d/%d", i, s.beeps)
		s.line.Set(true)
		s.sleep(s.duration)
		s.line.Set(false)
		s.sleep(s.pause)
	}
}
