package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"arcade/app"
	"arcade/backend"
	"arcade/config"
	"arcade/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var (
		configPath string
		shotDir    string
		verbose    bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&configPath, "config", "", "YAML settings file.")
	flag.StringVar(&shotDir, "shots", ".", "Directory for F12 screenshots (empty disables).")
	flag.BoolVar(&verbose, "v", false, "Debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	backend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	settings := config.Default()
	if configPath != "" {
		s, err := config.Load(configPath)
		if err != nil {
			fatalf("%v", err)
		}
		settings = s
	}
	appCfg := app.Config{Settings: settings, ScreenshotDir: shotDir}

	ws := settings.Window
	win := hal.WindowConfig{
		Width:             ws.Width,
		Height:            ws.Height,
		Title:             ws.Title,
		Resizable:         ws.Resizable,
		TPS:               ws.TPS,
		KeyRepeatDelay:    ws.TPS / 2,
		KeyRepeatInterval: max(ws.TPS/20, 1),
	}

	if cfg.Enabled {
		cfg.Window = win
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, appCfg)
		}, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(win, func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
