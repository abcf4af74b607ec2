package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Subscriber is an opaque delivery handle attached to a topic. Send must not
// block on transport latency; implementations hand the message off to their
// own writer (e.g. a buffered channel pumping a websocket) and report a
// delivery failure as an error.
type Subscriber interface {
	ID() string
	Send(msg Message) error
}

// Topic is a named channel with a dynamic subscriber set. A subscriber
// appears at most once per topic; subscribing twice with the same ID is a
// no-op, as is unsubscribing an absent handle.
type Topic struct {
	name   string
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[string]Subscriber
}

func newTopic(name string, logger *zap.Logger) *Topic {
	return &Topic{
		name:   name,
		logger: logger,
		subs:   make(map[string]Subscriber),
	}
}

// Name returns the topic name.
func (t *Topic) Name() string {
	return t.name
}

// Subscribe adds the handle to the topic.
func (t *Topic) Subscribe(s Subscriber) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.subs[s.ID()]; exists {
		return
	}
	t.subs[s.ID()] = s
}

// Unsubscribe removes the handle. Disconnect races are expected; removing an
// absent handle is harmless.
func (t *Topic) Unsubscribe(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.subs, id)
}

// SubscriberCount returns the current subscriber cardinality.
func (t *Topic) SubscriberCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs)
}

// Publish delivers the message to every currently subscribed handle. The
// subscriber set is snapshotted under the lock and delivery happens outside
// it, so a slow subscriber cannot stall subscribe/unsubscribe calls or other
// publishers. Delivery is best-effort and independent per subscriber: a
// failed Send is logged and never surfaced to the publisher.
func (t *Topic) Publish(msg Message) {
	t.mu.RLock()
	snapshot := make([]Subscriber, 0, len(t.subs))
	for _, s := range t.subs {
		snapshot = append(snapshot, s)
	}
	t.mu.RUnlock()

	for _, s := range snapshot {
		if err := s.Send(msg); err != nil {
			t.logger.Debug("notification delivery failed",
				zap.String("topic", t.name),
				zap.String("subscriber_id", s.ID()),
				zap.Error(err))
		}
	}
}
