// Command uv-cure runs a UV resin curing fixture: a button press closes a
// relay feeding the UV LED array for a fixed duration, then the relay is
// released and completion is signalled on a buzzer.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sweeney/uv-cure/internal/button"
	"github.com/sweeney/uv-cure/internal/buzzer"
	"github.com/sweeney/uv-cure/internal/config"
	"github.com/sweeney/uv-cure/internal/cycle"
	"github.com/sweeney/uv-cure/internal/gpio"
	"github.com/sweeney/uv-cure/internal/logger"
	"github.com/sweeney/uv-cure/internal/relay"
)

func main() {
	chip := flag.String("chip", gpio.DefaultChip, "GPIO character device name")
	pinButton := flag.Int("pin-button", gpio.DefaultPinButton, "BCM pin number for the start button")
	pinRelay := flag.Int("pin-relay", gpio.DefaultPinRelay, "BCM pin number for the relay control line")
	pinStatus := flag.Int("pin-status", gpio.DefaultPinStatus, "BCM pin number for the status LED")
	pinBuzzer := flag.Int("pin-buzzer", gpio.DefaultPinBuzzer, "BCM pin number for the buzzer")
	logLevel := flag.String("log-level", logger.InfoLevel, "log level (debug, info, warn, error)")

	flag.Parse()

	if err := run(*chip, *pinButton, *pinRelay, *pinStatus, *pinBuzzer, *logLevel); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(chip string, pinButton, pinRelay, pinStatus, pinBuzzer int, logLevel string) error {
	// Validate before any hardware is touched.
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid build configuration: %w", err)
	}

	lg := logger.New(logLevel)
	defer lg.Sync()

	lines, err := gpio.Open(chip, pinButton, pinRelay, pinStatus, pinBuzzer, lg)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer lines.Close()

	rly := relay.New(lines.Relay(), cfg.RelaySettle, nil)
	btn := button.New(lines.Button(), cfg.ButtonDebounce, nil)
	beeper := buzzer.New(lines.Buzzer(), cfg.CompletionBeeps, cfg.BeepDuration, cfg.BeepPause, nil, lg)

	lg.Infof("uv-cure starting: chip=%s button=%d relay=%d status=%d buzzer=%d",
		chip, pinButton, pinRelay, pinStatus, pinBuzzer)

	ctl := cycle.New(cfg, rly, btn, beeper, lines.Status(), nil, nil, lg)
	ctl.Run()
	return nil
}
