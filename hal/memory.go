package hal

// Memory is a host with no window and no audio device. Tests and tools feed
// its raw event queue directly.
type Memory struct {
	h *hostHAL
}

// NewMemory returns a memory host with a width x height framebuffer.
func NewMemory(width, height int) *Memory {
	return &Memory{h: newHostHAL(WindowConfig{Width: width, Height: height}, nullAudio{})}
}

func (m *Memory) Display() Display { return m.h.Display() }
func (m *Memory) Window() Window   { return m.h.Window() }
func (m *Memory) Input() Input     { return m.h.Input() }
func (m *Memory) Audio() Audio     { return m.h.aud }

// SetAudio replaces the audio device.
func (m *Memory) SetAudio(a Audio) { m.h.aud = a }

// Push appends raw events to the queue.
func (m *Memory) Push(evs ...RawEvent) {
	for _, ev := range evs {
		m.h.events.push(ev)
	}
}

// Presents returns how many frames were presented.
func (m *Memory) Presents() uint64 { return m.h.fb.presentCount() }

// Front returns a copy of the last presented frame, or nil.
func (m *Memory) Front() []byte {
	fb := m.h.fb
	dst := make([]byte, len(fb.Buffer()))
	if !fb.snapshot(dst) {
		return nil
	}
	return dst
}
