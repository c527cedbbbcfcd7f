// Package input fans heading events out to subscribed listeners.
package input

import "github.com/vovakirdan/neon-snake/internal/core"

// Bus delivers headings to its listeners in subscription order. It is not
// safe for concurrent use; publish and subscribe from the event loop.
type Bus struct {
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func(core.Heading)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (b *Bus) Subscribe(fn func(core.Heading)) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers h to every listener registered at the time of the call.
func (b *Bus) Publish(h core.Heading) {
	if h == core.HeadingNone {
		return
	}
	snapshot := append([]listener(nil), b.listeners...)
	for _, l := range snapshot {
		l.fn(h)
	}
}

// size returns the number of registered listeners.
func (b *Bus) size() int {
	return len(b.listeners)
}
