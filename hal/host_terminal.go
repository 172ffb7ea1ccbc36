//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	termLit  = '●'
	termDark = '·'
)

// RunTerminal runs the app with a text preview of both strips drawn in the
// terminal. Arrow keys, Enter and Escape act as the board buttons; q or
// Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig, opts HostOptions) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer s.Fini()

	// Log lines would scroll the preview away.
	if opts.LogOutput == nil {
		opts.LogOutput = io.Discard
	}
	return runTerminal(ctx, s, newApp, cfg, opts)
}

func runTerminal(ctx context.Context, s tcell.Screen, newApp func(HAL) func() error, cfg HeadlessConfig, opts HostOptions) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	h := newHostHAL(opts)
	defer h.flash.Close()
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan struct{})
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if isQuitKey(key) {
				close(quit)
				return
			}
			if b := termButton(key); b != ButtonUnknown {
				// Terminals report presses only.
				h.buttons.emit(b, true)
				h.buttons.emit(b, false)
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var (
		tick   uint64
		matrix []color.RGBA
		status []color.RGBA
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			matrix = h.matrix.snapshot(matrix)
			status = h.status.snapshot(status)
			drawTerminal(s, matrix, status)
			s.Show()

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// drawTerminal puts the matrix at the top left, two cells per LED, and the
// status bar one row below it.
func drawTerminal(s tcell.Screen, matrix, status []color.RGBA) {
	for i, c := range matrix {
		termLED(s, (i%previewCols)*2, i/previewCols, c)
	}
	for i, c := range status {
		termLED(s, i*2, previewRows+1, c)
	}
}

func termLED(s tcell.Screen, x, y int, c color.RGBA) {
	if c.R|c.G|c.B == 0 {
		s.SetContent(x, y, termDark, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}
	p := previewColor(c)
	s.SetContent(x, y, termLit, nil, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))))
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func termButton(ev *tcell.EventKey) Button {
	switch ev.Key() {
	case tcell.KeyUp:
		return ButtonUp
	case tcell.KeyDown:
		return ButtonDown
	case tcell.KeyLeft:
		return ButtonLeft
	case tcell.KeyRight:
		return ButtonRight
	case tcell.KeyEnter:
		return ButtonEnter
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ButtonEscape
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return ButtonEnter
		}
	}
	return ButtonUnknown
}
