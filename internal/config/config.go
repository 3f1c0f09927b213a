// Package config holds the build-time timing settings for the curing
// controller. To change curing time or beep behavior, edit the constants
// here and rebuild; there is no runtime configuration surface.
package config

import (
	"fmt"
	"time"
)

// Build-time settings. Typical cure times: 5s quick test, 10s standard,
// 30s deep, 60s full, 300s long.
const (
	CuringDurationSeconds = 300
	ButtonDebounceMS      = 50
	RelaySettleMS         = 500
	CompletionBeeps       = 3
	BeepDurationMS        = 200
	BeepPauseMS           = 300
	CycleCooldownMS       = 1000
)

// Config is the immutable set of timing values the controller runs with.
type Config struct {
	// CuringDuration is how long the relay stays closed (UV on).
	CuringDuration time.Duration
	// ButtonDebounce is the settling window after a button edge.
	ButtonDebounce time.Duration
	// RelaySettle is held after releasing the relay line so the
	// contacts finish moving.
	RelaySettle time.Duration
	// CompletionBeeps is the number of buzzer pulses after a cure.
	CompletionBeeps int
	// BeepDuration is the width of each buzzer pulse.
	BeepDuration time.Duration
	// BeepPause is the gap between buzzer pulses.
	BeepPause time.Duration
	// CycleCooldown is the idle hold after a cycle before the next
	// press is accepted.
	CycleCooldown time.Duration
}

// Default returns the build-time configuration.
func Default() Config {
	return Config{
		CuringDuration:  CuringDurationSeconds * time.Second,
		ButtonDebounce:  ButtonDebounceMS * time.Millisecond,
		RelaySettle:     RelaySettleMS * time.Millisecond,
		CompletionBeeps: CompletionBeeps,
		BeepDuration:    BeepDurationMS * time.Millisecond,
		BeepPause:       BeepPauseMS * time.Millisecond,
		CycleCooldown:   CycleCooldownMS * time.Millisecond,
	}
}

// Validate checks the configuration bounds. It must be called before any
// hardware is opened; a violation is fatal, never recovered at runtime.
func (c Config) Validate() error {
	if c.CuringDuration <= 0 {
		return fmt.Errorf("curing duration must be greater than 0, got %v", c.CuringDuration)
	}
	if c.CuringDuration > 600*time.Second {
		return fmt.Errorf("curing duration must be 10 minutes or less, got %v", c.CuringDuration)
	}
	if c.ButtonDebounce < 10*time.Millisecond {
		return fmt.Errorf("button debounce below 10ms may double-trigger, got %v", c.ButtonDebounce)
	}
	if c.ButtonDebounce > 500*time.Millisecond {
		return fmt.Errorf("button debounce above 500ms feels unresponsive, got %v", c.ButtonDebounce)
	}
	if c.RelaySettle <= 0 {
		return fmt.Errorf("relay settle time must be greater than 0, got %v", c.RelaySettle)
	}
	if c.CompletionBeeps < 1 {
		return fmt.Errorf("need at least 1 completion beep, got %d", c.CompletionBeeps)
	}
	if c.CompletionBeeps > 10 {
		return fmt.Errorf("at most 10 completion beeps, got %d", c.CompletionBeeps)
	}
	if c.BeepDuration <= 0 {
		return fmt.Errorf("beep duration must be greater than 0, got %v", c.BeepDuration)
	}
	if c.BeepPause < 0 {
		return fmt.Errorf("beep pause must not be negative, got %v", c.BeepPause)
	}
	if c.CycleCooldown < 0 {
		return fmt.Errorf("cycle cooldown must not be negative, got %v", c.CycleCooldown)
	}
	return nil
}
