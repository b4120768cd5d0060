// Package events is an in-process change feed. Services publish an event
// after every successful write and any number of consumers (the SSE stream,
// tests) subscribe to topics with an explicit unsubscribe lifecycle.
package events

import (
	"sync"
	"time"
)

// Topics, one per stored collection.
const (
	TopicItems       = "items"
	TopicCategories  = "categories"
	TopicBills       = "bills"
	TopicDealers     = "dealers"
	TopicPurchases   = "dealerPurchases"
	TopicAlterations = "alterations"
	TopicSettings    = "settings"
)

// Event describes a single change to a stored entity.
type Event struct {
	Topic    string    `json:"topic"`
	Action   string    `json:"action"` // created | updated | deleted
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
	Payload  any       `json:"payload,omitempty"`
}

// Bus fans events out to all active subscribers. Slow subscribers drop
// events rather than block publishers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	topics map[string]bool // empty means all topics
	ch     chan Event
}

// NewBus creates an event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscription)}
}

// Subscribe registers a consumer for the given topics (none means all).
// The returned cancel func must be called when the consumer goes away; it
// closes the channel.
func (b *Bus) Subscribe(topics ...string) (<-chan Event, func()) {
	sub := &subscription{
		topics: make(map[string]bool, len(topics)),
		ch:     make(chan Event, 64),
	}
	for _, t := range topics {
		sub.topics[t] = true
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers the event to every matching subscriber.
func (b *Bus) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if len(sub.topics) > 0 && !sub.topics[evt.Topic] {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// subscriber is not draining; drop instead of blocking the writer
		}
	}
}
