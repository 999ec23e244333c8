package reset

import (
	"sync"

	"FutureYako/internal/logger"
)

type subscriber struct {
	id   int
	name string
	fn   func()
}

// Bus fans a "start fresh" signal out to every component holding local
// state. Subscribers run synchronously, in registration order.
type Bus struct {
	mu          sync.Mutex
	subscribers []subscriber
	nextID      int
	resets      int
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn under name and returns a function removing it.
func (b *Bus) Subscribe(name string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: id, name: name, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subscribers {
			if s.id == id {
				b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (b *Bus) Reset() {
	b.mu.Lock()
	b.resets++
	count := b.resets
	subscribers := make([]subscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.Unlock()

	for _, s := range subscribers {
		s.fn()
		logger.Debug().Str("subscriber", s.name).Msg("reset delivered")
	}

	logger.Info().
		Int("reset", count).
		Int("subscribers", len(subscribers)).
		Msg("demo state reset")
}

// Count reports how many resets have been published.
func (b *Bus) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resets
}
