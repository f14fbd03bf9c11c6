package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// RunHeadless drives the step function from a ticker without opening a
// window. It returns nil when cfg.Ticks is reached or the step function
// returns ErrStop, and ctx.Err() when ctx is cancelled first.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Width, cfg.Height)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	finish := func() error {
		if !cfg.ASCII {
			return nil
		}
		if err := DumpASCII(os.Stdout, h.fb, TerminalWidth(os.Stdout)); err != nil {
			return fmt.Errorf("ascii dump: %w", err)
		}
		return nil
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return finish()
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finish()
			}
		}
	}
}
