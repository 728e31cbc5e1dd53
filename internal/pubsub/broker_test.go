package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishDeliversToAllSubscribers(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx := context.Background()
	sub1 := broker.Subscribe(ctx)
	sub2 := broker.Subscribe(ctx)

	broker.Publish(CreatedEvent, "hello")

	for _, sub := range []<-chan Event[string]{sub1, sub2} {
		select {
		case ev := <-sub:
			assert.Equal(t, CreatedEvent, ev.Type)
			assert.Equal(t, "hello", ev.Payload)
			assert.False(t, ev.Timestamp.IsZero())
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestBroker_SubscribeAfterCloseReturnsClosedChannel(t *testing.T) {
	broker := NewBroker[int]()
	broker.Close()

	sub := broker.Subscribe(context.Background())
	_, ok := <-sub
	assert.False(t, ok, "channel from closed broker should be closed")
}

func TestBroker_CancelledContextRemovesSubscriber(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()

	// The cleanup goroutine closes the channel asynchronously.
	select {
	case _, ok := <-sub:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription channel was not closed after cancel")
	}
	assert.Eventually(t, func() bool {
		return broker.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBroker_PublishAfterCloseIsNoop(t *testing.T) {
	broker := NewBroker[string]()
	sub := broker.Subscribe(context.Background())
	broker.Close()

	// Must not panic or deliver.
	broker.Publish(UpdatedEvent, "ignored")

	_, ok := <-sub
	assert.False(t, ok)
}

func TestBroker_FullSubscriberDropsEvents(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	sub := broker.Subscribe(context.Background())

	broker.Publish(CreatedEvent, 1)
	broker.Publish(CreatedEvent, 2) // dropped, buffer is full

	ev := <-sub
	assert.Equal(t, 1, ev.Payload)

	select {
	case ev := <-sub:
		t.Fatalf("expected no second event, got %v", ev.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_DoubleCloseIsSafe(t *testing.T) {
	broker := NewBroker[string]()
	broker.Close()
	assert.NotPanics(t, func() { broker.Close() })
}
