package controller

import (
	"sync"

	domain "github.com/oshokin/emergency-button/internal/domain/activation"
)

// Event is one delivery to an observer.
type Event struct {
	// Transition is the accepted phase change.
	Transition domain.Transition
	// Desync is true when older events were dropped for this observer since
	// its last delivery. The observer must re-query the current phase instead
	// of trusting its event log.
	Desync bool
}

// Subscription is the opaque handle an observer holds. The bus owns the
// mapping from handle to delivery channel.
type Subscription struct {
	// id identifies the subscription inside the bus registry.
	id uint64
	// ch is the buffered delivery channel, closed on unsubscribe.
	ch chan Event
	// desynced marks that events were dropped and the next delivery must
	// carry the gap flag. Guarded by the bus mutex.
	desynced bool
}

// Events returns the delivery channel. It is closed when the subscription is
// removed or the bus shuts down.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// defaultBufferSize is used when the engine config leaves the depth unset.
const defaultBufferSize = 64

// bus fans accepted transitions out to all current subscribers. Delivery to
// each observer is decoupled through a buffered channel: publish never blocks,
// on overflow the oldest buffered event is dropped and the subscription is
// marked desynchronized.
type bus struct {
	// mu guards the registry and the per-subscription desync flags. publish
	// and unsubscribe share it, so no delivery can race an unsubscribe.
	mu sync.Mutex
	// subs is the registry of live subscriptions.
	subs map[uint64]*Subscription
	// nextID assigns subscription identifiers.
	nextID uint64
	// bufferSize is the per-subscription channel depth.
	bufferSize int
	// dropped counts events discarded due to full buffers, for metrics.
	dropped uint64
	// closed marks the bus as shut down.
	closed bool
}

// newBus creates an empty registry with the provided per-observer depth.
func newBus(bufferSize int) *bus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &bus{
		subs:       make(map[uint64]*Subscription),
		bufferSize: bufferSize,
	}
}

// subscribe registers a new observer.
func (b *bus) subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++

	sub := &Subscription{
		id: b.nextID,
		ch: make(chan Event, b.bufferSize),
	}

	if b.closed {
		// Late subscriber on a closed bus gets an already-closed channel.
		close(sub.ch)

		return sub
	}

	b.subs[sub.id] = sub

	return sub
}

// unsubscribe removes the observer and closes its channel. Idempotent.
// Publish holds the same mutex, so after unsubscribe returns no further
// delivery can happen.
func (b *bus) unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub.id]; !ok {
		return
	}

	delete(b.subs, sub.id)
	close(sub.ch)
}

// publish delivers the transition to every subscriber without blocking and
// reports how many buffered events it had to drop. The engine calls it while
// holding its own lock, which is what guarantees every observer sees
// transitions in the exact accepted order.
func (b *bus) publish(record domain.Transition) (droppedNow uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0
	}

	for _, sub := range b.subs {
		event := Event{Transition: record, Desync: sub.desynced}

		select {
		case sub.ch <- event:
			sub.desynced = false
		default:
			// Buffer full: drop the oldest event to make room and flag the
			// gap on the event going in.
			select {
			case <-sub.ch:
				droppedNow++
			default:
			}

			event.Desync = true

			select {
			case sub.ch <- event:
				sub.desynced = false
			default:
				// Still full (unreachable with a positive buffer, kept so a
				// publish can never block): remember the gap for next time.
				sub.desynced = true
			}
		}
	}

	b.dropped += droppedNow

	return droppedNow
}

// droppedCount reports how many events were discarded so far.
func (b *bus) droppedCount() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}

// close shuts the registry down and closes every subscription channel.
func (b *bus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
