package input

import (
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestBusPublishAndUnsubscribe(t *testing.T) {
	b := NewBus()

	var a, c []core.Heading
	unsubA := b.Subscribe(func(h core.Heading) { a = append(a, h) })
	b.Subscribe(func(h core.Heading) { c = append(c, h) })

	b.Publish(core.HeadingUp)
	unsubA()
	unsubA()
	b.Publish(core.HeadingLeft)

	if len(a) != 1 || a[0] != core.HeadingUp {
		t.Errorf("first listener got %v, expected [up]", a)
	}
	if len(c) != 2 {
		t.Errorf("second listener got %v, expected two events", c)
	}
	if b.size() != 1 {
		t.Errorf("size() = %d, expected 1", b.size())
	}
}

func TestBusIgnoresNone(t *testing.T) {
	b := NewBus()
	calls := 0
	b.Subscribe(func(core.Heading) { calls++ })

	b.Publish(core.HeadingNone)
	if calls != 0 {
		t.Errorf("HeadingNone was delivered %d times", calls)
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	b := NewBus()
	calls := 0
	var unsub func()
	unsub = b.Subscribe(func(core.Heading) {
		calls++
		unsub()
	})
	b.Subscribe(func(core.Heading) { calls++ })

	b.Publish(core.HeadingDown)
	b.Publish(core.HeadingDown)

	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
}
