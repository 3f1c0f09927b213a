//go:build !linux

package gpio

import (
	"errors"

	"github.com/sweeney/uv-cure/internal/logger"
)

// Lines is not available on non-Linux platforms.
type Lines struct{}

// Open returns an error on non-Linux platforms.
func Open(chipName string, pinButton, pinRelay, pinStatus, pinBuzzer int, log *logger.Logger) (*Lines, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Button is not implemented on non-Linux platforms.
func (l *Lines) Button() EdgeWaiter { return nil }

// Relay is not implemented on non-Linux platforms.
func (l *Lines) Relay() FlexLine { return nil }

// Status is not implemented on non-Linux platforms.
func (l *Lines) Status() OutputLine { return nil }

// Buzzer is not implemented on non-Linux platforms.
func (l *Lines) Buzzer() OutputLine { return nil }

// Close is not implemented on non-Linux platforms.
func (l *Lines) Close() error { return nil }
