package hal

import "sync"

const hostEventQueueCap = 256

// hostEventQueue is a FIFO of raw events. When full, the oldest event is
// dropped so input from a stalled loop does not grow without bound.
type hostEventQueue struct {
	mu      sync.Mutex
	events  []RawEvent
	dropped uint64
}

func newHostEventQueue() *hostEventQueue {
	return &hostEventQueue{events: make([]RawEvent, 0, 64)}
}

func (q *hostEventQueue) push(ev RawEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) >= hostEventQueueCap {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
		q.dropped++
	}
	q.events = append(q.events, ev)
}

func (q *hostEventQueue) Drain(dst []RawEvent) []RawEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	dst = append(dst, q.events...)
	q.events = q.events[:0]
	return dst
}

func (q *hostEventQueue) droppedCount() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
