package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBroadcasterTopicIdempotent(t *testing.T) {
	b := NewBroadcaster(zap.NewNop())

	first := b.Topic(TopicAuth)
	second := b.Topic(TopicAuth)
	assert.Same(t, first, second)
	assert.Equal(t, TopicAuth, first.Name())

	other := b.Topic(TopicInventory)
	assert.NotSame(t, first, other)
}

func TestBroadcasterPublishToEmptyTopic(t *testing.T) {
	b := NewBroadcaster(zap.NewNop())

	// No subscribers: no panic, no error, nothing delivered.
	b.Publish(TopicAuth, Message{Message: "nobody home", Type: TypeInfo})
	assert.Equal(t, 0, b.Topic(TopicAuth).SubscriberCount())
}

func TestBroadcasterPublishReachesTopicSubscribers(t *testing.T) {
	b := NewBroadcaster(zap.NewNop())

	authSub := newRecordingSubscriber("auth-sub")
	inventorySub := newRecordingSubscriber("inventory-sub")
	b.Topic(TopicAuth).Subscribe(authSub)
	b.Topic(TopicInventory).Subscribe(inventorySub)

	b.Publish(TopicAuth, Message{Message: "User logged in: x@y.z", Type: TypeSuccess})

	require.Len(t, authSub.received(), 1)
	assert.Empty(t, inventorySub.received())
}

func TestBroadcasterConcurrentTopicCreation(t *testing.T) {
	b := NewBroadcaster(zap.NewNop())

	var wg sync.WaitGroup
	topics := make([]*Topic, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			topics[i] = b.Topic(TopicActiveUsers)
		}(i)
	}
	wg.Wait()

	for _, topic := range topics {
		assert.Same(t, topics[0], topic)
	}
}
