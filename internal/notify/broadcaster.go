package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Broadcaster owns the registry of topics. It is an explicit dependency of
// whichever component needs to publish; there is no process-wide instance,
// and tests construct their own.
type Broadcaster struct {
	logger *zap.Logger

	mu     sync.RWMutex
	topics map[string]*Topic
}

// NewBroadcaster creates an empty registry.
func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		logger: logger,
		topics: make(map[string]*Topic),
	}
}

// Topic returns the named topic, creating it on first use. Idempotent:
// repeated calls with the same name return the same instance.
func (b *Broadcaster) Topic(name string) *Topic {
	b.mu.RLock()
	topic, ok := b.topics[name]
	b.mu.RUnlock()
	if ok {
		return topic
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if topic, ok := b.topics[name]; ok {
		return topic
	}
	topic = newTopic(name, b.logger)
	b.topics[name] = topic
	return topic
}

// Publish fans the message out on the named topic. Publishing to a topic
// with no subscribers is a no-op, not an error.
func (b *Broadcaster) Publish(name string, msg Message) {
	b.Topic(name).Publish(msg)
}
