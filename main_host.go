//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"logic/app"
	"logic/hal"
	"logic/internal/charset"
)

func main() {
	var (
		cfg      hal.HeadlessConfig
		opts     hal.HostOptions
		appCfg   = app.DefaultConfig()
		headless bool
		term     bool
		dump     bool
		csName   string
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Preview the LEDs in the terminal.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Step rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N steps in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&dump, "dump", false, "Print the last matrix frame when a headless run ends.")
	flag.BoolVar(&opts.Verbose, "v", false, "Log every transmitted frame.")
	flag.StringVar(&appCfg.Text, "text", app.DefaultText, "Text for the scrolling scene.")
	flag.StringVar(&csName, "charset", "utf-8", "Encoding of -text: utf-8, iso-8859-2 or windows-1250.")
	flag.IntVar(&appCfg.Intensity, "intensity", -1, "LED intensity 0-255 (-1 = stored setting).")
	flag.IntVar(&appCfg.Scene, "scene", -1, "Start scene 0-2 (-1 = stored setting).")
	flag.IntVar(&appCfg.FrameMillis, "frame-ms", app.DefaultFrameMillis, "Scene step period in milliseconds.")
	flag.Parse()

	cs, err := charset.Parse(csName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	appCfg.Charset = cs
	if dump {
		cfg.Dump = os.Stdout
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case term:
		err = hal.RunTerminal(ctx, newApp, cfg, opts)
	case headless:
		err = hal.RunHeadless(ctx, newApp, cfg, opts)
	default:
		err = hal.RunWindow(newApp, opts)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
