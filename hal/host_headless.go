//go:build !tinygo

package hal

import (
	"bufio"
	"context"
	"fmt"
	"image/color"
	"io"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// Dump, when set, receives the last matrix frame as text on exit.
	Dump io.Writer
}

// RunHeadless runs the app without any preview.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig, opts HostOptions) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(opts)
	defer h.flash.Close()
	step := newApp(h)

	err := runTicker(ctx, h, step, d, cfg.Ticks)
	if cfg.Dump != nil {
		if derr := dumpFrame(cfg.Dump, h.matrix.snapshot(nil), previewCols); derr != nil && err == nil {
			err = derr
		}
	}
	return err
}

func runTicker(ctx context.Context, h *hostHAL, step func() error, d time.Duration, limit uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if limit > 0 && tick >= limit {
				return nil
			}
		}
	}
}

// dumpFrame writes one line per matrix row: '.' for dark LEDs, '#' for lit
// ones.
func dumpFrame(w io.Writer, frame []color.RGBA, cols int) error {
	bw := bufio.NewWriter(w)
	for i, c := range frame {
		ch := byte('.')
		if c.R|c.G|c.B != 0 {
			ch = '#'
		}
		bw.WriteByte(ch)
		if (i+1)%cols == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
