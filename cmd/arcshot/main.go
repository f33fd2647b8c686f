// Command arcshot runs the demo scene without a window for a number of
// frames and saves the last one as a BMP.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"arcade/app"
	"arcade/backend"
	"arcade/config"
	"arcade/hal"
)

func main() {
	var (
		outPath    = flag.String("out", "arcade.bmp", "Output BMP file.")
		frames     = flag.Int("frames", 60, "Frames to run before capturing.")
		configPath = flag.String("config", "", "YAML settings file.")
		scale      = flag.Float64("scale", 1, "Surface scale; the scene is letterboxed into it.")
		verbose    = flag.Bool("v", false, "Debug logging.")
	)
	flag.Parse()

	if *verbose {
		backend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	settings := config.Default()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		settings = s
	}
	// No device to play on.
	settings.Audio.Enable = false

	if err := run(settings, *frames, *scale, *outPath); err != nil {
		fatalf("arcshot: %v", err)
	}
}

func run(settings config.Settings, frames int, scale float64, outPath string) error {
	if frames < 1 {
		return errors.Errorf("frames must be at least 1, got %d", frames)
	}
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}

	ws := settings.Window
	m := hal.NewMemory(ws.Width, ws.Height)
	d, err := app.Start(m, app.Config{Settings: settings})
	if err != nil {
		return err
	}
	defer d.Close()

	if scale != 1 {
		m.Push(hal.RawEvent{
			Kind:   hal.RawResize,
			Width:  int(float64(ws.Width) * scale),
			Height: int(float64(ws.Height) * scale),
		})
	}
	for i := 0; i < frames; i++ {
		if err := d.Step(); err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}
	}
	if err := d.Backend().Capture.BMP(outPath); err != nil {
		return err
	}
	fmt.Printf("%s: %d frames\n", outPath, d.Frame())
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
