package lspservice

import (
	"sync"

	"github.com/uber/amazonq-lsp/src/qlsp/entity"
)

// broadcaster fans availability events out to subscribers. Each subscriber holds at most
// one pending event; a newer event replaces an unread one.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan entity.Availability
	nextID int
	last   *entity.Availability
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan entity.Availability)}
}

func (b *broadcaster) subscribe() (<-chan entity.Availability, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan entity.Availability, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	if b.last != nil {
		ch <- *b.last
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *broadcaster) publish(ev entity.Availability) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.last = &ev
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- ev
	}
}

func (b *broadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
