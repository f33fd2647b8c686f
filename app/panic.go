package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const crashTextSize = 12

// crash logs a recovered panic, paints it over the surface and returns it
// as an error so the host loop stops.
func (d *Demo) crash(v any) error {
	stack := string(debug.Stack())
	d.log.Error("app: panic", "frame", d.frame, "panic", v, "stack", stack)

	lines := []string{
		"Arcade Panic:",
		fmt.Sprintf("frame: %d", d.frame),
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(stack, "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}
	d.paintLines(lines)
	return errors.Errorf("app: panic: %v", v)
}

// paintLines draws lines black on white in physical pixels, wrapping to the
// surface width, and presents. A second panic while painting is dropped.
func (d *Demo) paintLines(lines []string) {
	defer func() { _ = recover() }()

	d.b.ClearViewportTransform()
	r, t := d.b.Render, d.b.Text
	r.ClearClipRect()
	r.SetClearColor(255, 255, 255)
	r.BeginFrame()

	fg := color.RGBA{A: 255}
	maxW, maxH := d.b.Window.DrawableSize()
	cw, lh := t.Measure("0", crashTextSize)
	if cw <= 0 || lh <= 0 {
		r.EndFrame()
		return
	}
	cols := max(maxW/cw, 1)

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > maxH {
				r.EndFrame()
				return
			}
			chunk, rest := takeRunes(line, cols)
			t.Draw(0, y, chunk, fg, crashTextSize)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	r.EndFrame()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
