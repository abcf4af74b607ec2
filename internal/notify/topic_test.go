package notify

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSubscriber struct {
	id  string
	err error

	mu   sync.Mutex
	msgs []Message
}

func newRecordingSubscriber(id string) *recordingSubscriber {
	return &recordingSubscriber{id: id}
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) Send(msg Message) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

func (s *recordingSubscriber) received() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.msgs...)
}

func TestTopicFanOutDeliversExactlyOnce(t *testing.T) {
	topic := newTopic("auth", zap.NewNop())

	subs := make([]*recordingSubscriber, 5)
	for i := range subs {
		subs[i] = newRecordingSubscriber(fmt.Sprintf("sub-%d", i))
		topic.Subscribe(subs[i])
	}
	require.Equal(t, 5, topic.SubscriberCount())

	msg := Message{Message: "User logged in: alice@example.com", Type: TypeSuccess}
	topic.Publish(msg)

	for _, sub := range subs {
		received := sub.received()
		require.Len(t, received, 1)
		assert.Equal(t, msg, received[0])
	}
}

func TestTopicSubscribeIdempotent(t *testing.T) {
	topic := newTopic("auth", zap.NewNop())
	sub := newRecordingSubscriber("dup")

	topic.Subscribe(sub)
	topic.Subscribe(sub)
	assert.Equal(t, 1, topic.SubscriberCount())

	topic.Publish(Message{Message: "hello", Type: TypeInfo})
	assert.Len(t, sub.received(), 1)
}

func TestTopicUnsubscribedReceivesNothing(t *testing.T) {
	topic := newTopic("auth", zap.NewNop())
	stay := newRecordingSubscriber("stay")
	leave := newRecordingSubscriber("leave")

	topic.Subscribe(stay)
	topic.Subscribe(leave)
	topic.Unsubscribe(leave.ID())

	topic.Publish(Message{Message: "after unsubscribe", Type: TypeInfo})
	assert.Len(t, stay.received(), 1)
	assert.Empty(t, leave.received())

	// Unsubscribing an absent handle is harmless.
	topic.Unsubscribe("never-subscribed")
}

func TestTopicFailingSubscriberDoesNotBlockOthers(t *testing.T) {
	topic := newTopic("auth", zap.NewNop())

	broken := newRecordingSubscriber("broken")
	broken.err = errors.New("buffer full")
	healthy := newRecordingSubscriber("healthy")

	topic.Subscribe(broken)
	topic.Subscribe(healthy)

	topic.Publish(Message{Message: "delivery", Type: TypeFailure})
	assert.Len(t, healthy.received(), 1)
}

func TestTopicPerSubscriberOrdering(t *testing.T) {
	topic := newTopic("inventory", zap.NewNop())
	sub := newRecordingSubscriber("ordered")
	topic.Subscribe(sub)

	const n = 100
	for i := 0; i < n; i++ {
		topic.Publish(Message{Message: fmt.Sprintf("msg-%d", i), Type: TypeInfo})
	}

	received := sub.received()
	require.Len(t, received, n)
	for i, msg := range received {
		assert.Equal(t, fmt.Sprintf("msg-%d", i), msg.Message)
	}
}

func TestTopicConcurrentAccess(t *testing.T) {
	topic := newTopic("stress", zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		id := fmt.Sprintf("sub-%d", i)
		go func() {
			defer wg.Done()
			topic.Subscribe(newRecordingSubscriber(id))
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				topic.Publish(Message{Message: "concurrent", Type: TypeInfo})
			}
		}()
		go func() {
			defer wg.Done()
			topic.Unsubscribe(id)
		}()
	}
	wg.Wait()
}
