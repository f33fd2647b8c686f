// Package input turns the host's raw event queue into normalized events.
package input

import (
	"log/slog"

	"arcade/event"
	"arcade/hal"
	"arcade/internal/logx"
)

// Port is the input port. It is not safe for concurrent use.
type Port struct {
	in   hal.Input
	keys hal.KeyTable
	log  *slog.Logger

	raw     []hal.RawEvent
	dropped uint64
}

// New returns an input port reading from in. The key table is captured
// once.
func New(in hal.Input, log *slog.Logger) *Port {
	return &Port{
		in:   in,
		keys: in.KeyTable(),
		log:  logx.OrNop(log),
	}
}

// Poll drains every pending raw event and returns the normalized ones in
// arrival order. Raw kinds with no normalized form are dropped. The result
// is freshly allocated on each call.
func (p *Port) Poll() []event.Event {
	p.raw = p.in.Events().Drain(p.raw[:0])
	if len(p.raw) == 0 {
		return nil
	}
	out := make([]event.Event, 0, len(p.raw))
	for i := range p.raw {
		ev, ok := p.translate(&p.raw[i])
		if !ok {
			p.dropped++
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Dropped returns how many raw events Poll has discarded so far.
func (p *Port) Dropped() uint64 { return p.dropped }

func (p *Port) translate(r *hal.RawEvent) (event.Event, bool) {
	switch r.Kind {
	case hal.RawQuit:
		return event.Quit{}, true
	case hal.RawKeyDown, hal.RawKeyUp:
		down := r.Kind == hal.RawKeyDown
		return event.Key{
			Down:        down,
			Key:         p.keys[r.Key],
			Code:        r.Key,
			Scancode:    r.Scancode,
			HasScancode: r.HasScancode,
			Mod:         r.Mod,
			Repeat:      down && r.Repeat,
		}, true
	case hal.RawResize:
		return event.WindowResized{Width: r.Width, Height: r.Height}, true
	case hal.RawTextInput:
		return event.TextInput{Text: r.Text}, true
	case hal.RawMouseMotion:
		return event.MouseMotion{X: r.X, Y: r.Y, DX: r.DX, DY: r.DY}, true
	case hal.RawMouseButtonDown, hal.RawMouseButtonUp:
		return event.MouseButton{
			Down:   r.Kind == hal.RawMouseButtonDown,
			Button: r.Button,
			X:      r.X,
			Y:      r.Y,
		}, true
	case hal.RawMouseWheel:
		return event.MouseWheel{X: r.WheelX, Y: r.WheelY}, true
	default:
		p.log.Debug("input: raw event dropped", "kind", r.Kind)
		return nil, false
	}
}
