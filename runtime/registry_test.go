package runtime

import (
	"chatroom/domain"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, e domain.Envelope) error {
	return nil
}

func TestRegistry_Subscribe_One_Subscriber(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	subscriberID := uuid.NewString()
	sink := Sink{name: "alice"}

	// Given nobody is connected
	req.Zero(registry.Len())
	req.Empty(registry.Sinks())

	// When a subscriber joins
	registry.Subscribe(subscriberID, sink)

	// Then it is part of the snapshot
	req.Equal(1, registry.Len())
	req.Contains(registry.Sinks(), sink)
}

func TestRegistry_Subscribe_Multiple_Subscribers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink1 := Sink{name: "alice"}
	sink2 := Sink{name: "bob"}

	// When two subscribers join
	registry.Subscribe(uuid.NewString(), sink1)
	registry.Subscribe(uuid.NewString(), sink2)

	// Then both are returned
	req.Equal(2, registry.Len())
	req.ElementsMatch([]Sink{sink1, sink2}, registry.Sinks())
}

func TestRegistry_Unsubscribe_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	subscriberID := uuid.NewString()

	// Given a connected subscriber
	registry.Subscribe(subscriberID, Sink{name: "alice"})

	// When it leaves twice
	first := registry.Unsubscribe(subscriberID)
	second := registry.Unsubscribe(subscriberID)

	// Then only the first call removed it
	req.True(first)
	req.False(second)
	req.Zero(registry.Len())
}

func TestRegistry_Sinks_Is_A_Snapshot(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	subscriberID := uuid.NewString()
	registry.Subscribe(subscriberID, Sink{name: "alice"})

	// Given a snapshot taken before the subscriber leaves
	snapshot := registry.Sinks()

	// When the subscriber leaves
	registry.Unsubscribe(subscriberID)

	// Then the snapshot is unchanged
	req.Len(snapshot, 1)
	req.Empty(registry.Sinks())
}

func TestRegistry_Concurrent_Subscribe_Unsubscribe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()
			registry.Subscribe(id, Sink{name: id})
			_ = registry.Sinks()
			registry.Unsubscribe(id)
		}()
	}
	wg.Wait()

	req.Zero(registry.Len())
}
