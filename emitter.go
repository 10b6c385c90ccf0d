package easing

import (
	"slices"
)

// Event names a notification emitted by a [Notifier].
type Event string

// EventUpdated is emitted after every accepted change to a widget's curve.
const EventUpdated Event = "updated"

// Notifier is implemented by types that emit change notifications.
//
// Listeners run synchronously, in registration order, before the call that
// caused the change returns.
type Notifier interface {
	// On registers fn to be called for every emission of event until remove
	// is called.
	On(event Event, fn func(Snapshot)) (remove func(), err error)
	// Once returns a channel that receives the next emission of event. The
	// channel is buffered and never blocks the emitter; it is closed without
	// a value if the notifier is torn down first.
	Once(event Event) (<-chan Snapshot, error)
}

type listener[T any] struct {
	id    uint64
	event Event
	fn    func(T)
	// ch is set for one-shot listeners.
	ch chan T
}

type emission[T any] struct {
	event Event
	v     T
}

// emitter delivers values to listeners synchronously. Emissions that happen
// while listeners are running are queued and delivered once the current
// emission has reached every listener, so that all listeners observe
// emissions in the same order.
type emitter[T any] struct {
	nextID      uint64
	listeners   []listener[T]
	queue       []emission[T]
	dispatching bool
	closed      bool
}

func (e *emitter[T]) on(event Event, fn func(T)) (remove func()) {
	id := e.add(listener[T]{event: event, fn: fn})
	return func() { e.remove(id) }
}

func (e *emitter[T]) once(event Event) <-chan T {
	ch := make(chan T, 1)
	e.add(listener[T]{event: event, ch: ch})
	return ch
}

func (e *emitter[T]) add(l listener[T]) uint64 {
	e.nextID++
	l.id = e.nextID
	e.listeners = append(e.listeners, l)
	return l.id
}

func (e *emitter[T]) remove(id uint64) {
	e.listeners = slices.DeleteFunc(e.listeners, func(l listener[T]) bool {
		return l.id == id
	})
}

func (e *emitter[T]) emit(event Event, v T) {
	if e.closed {
		return
	}
	e.queue = append(e.queue, emission[T]{event, v})
	if e.dispatching {
		return
	}
	e.dispatching = true
	defer func() {
		e.dispatching = false
		e.queue = e.queue[:0]
	}()
	for len(e.queue) > 0 {
		em := e.queue[0]
		e.queue = e.queue[1:]
		// Listeners added or removed by a listener take effect for the next
		// emission.
		for _, l := range slices.Clone(e.listeners) {
			if e.closed {
				return
			}
			if l.event != em.event {
				continue
			}
			if l.ch != nil {
				e.remove(l.id)
				l.ch <- em.v
				continue
			}
			l.fn(em.v)
		}
	}
}

// close drops all listeners and pending emissions and closes the channels of
// outstanding one-shot listeners. Later emissions are ignored.
func (e *emitter[T]) close() {
	e.closed = true
	for _, l := range e.listeners {
		if l.ch != nil {
			close(l.ch)
		}
	}
	e.listeners = nil
	e.queue = nil
}
