package runtime

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/mocks"
	"chatroom/moderation"
	"chatroom/repositories"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const deliveryTimeout = 50 * time.Millisecond

func newTestHub(t *testing.T, rooms ...string) *Hub {
	t.Helper()
	return newBufferedTestHub(t, 16, rooms...)
}

func newBufferedTestHub(t *testing.T, bufferSize int, rooms ...string) *Hub {
	t.Helper()
	repo := repositories.NewRoomRepository()
	for _, name := range rooms {
		_, err := repo.Create(name)
		require.NoError(t, err)
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewHub(log, NewRegistry(), repo, bufferSize, deliveryTimeout)
}

func receive(t *testing.T, sub *Subscriber) domain.Envelope {
	t.Helper()
	select {
	case env := <-sub.Events():
		return env
	case <-time.After(time.Second):
		t.Fatalf("subscriber %s received nothing", sub.ID)
		return domain.Envelope{}
	}
}

func requireNothing(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case env := <-sub.Events():
		t.Fatalf("subscriber %s received an unexpected envelope %+v", sub.ID, env)
	default:
	}
}

func TestHub_Publish_Broadcasts_To_Every_Subscriber(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()

	// Given two connected subscribers
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// When alice talks in an existing room
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: "hello"})

	// Then both receive the envelope, sender included
	for _, sub := range []*Subscriber{alice, bob} {
		env := receive(t, sub)
		req.Equal("general", env.RoomName)
		req.Equal("alice", env.SenderID)
		req.Equal("hello", env.Body)
		req.Equal(domain.MessageText, env.Type)
		req.False(env.Notice)
		req.False(env.Timestamp.IsZero())
	}
}

func TestHub_Publish_Unknown_Room_Notifies_Sender_Only(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()

	// Given two connected subscribers
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// When alice talks in a room that does not exist
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "ghost", Body: "anyone?"})

	// Then only alice gets the notice
	env := receive(t, alice)
	req.True(env.Notice)
	req.Equal("Room does not exist: ghost", env.Body)
	requireNothing(t, bob)
}

func TestHub_Publish_Join_And_Leave_Are_Broadcast(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// When alice joins then leaves
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageJoin, RoomName: "general"})
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageLeave, RoomName: "general"})

	// Then bob sees both in order
	req.Equal(domain.MessageJoin, receive(t, bob).Type)
	req.Equal(domain.MessageLeave, receive(t, bob).Type)
}

func TestHub_Publish_Keeps_Sender_Order(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	bodies := []string{"one", "two", "three", "four", "five"}
	for _, body := range bodies {
		hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: body})
	}

	for _, body := range bodies {
		req.Equal(body, receive(t, bob).Body)
	}
}

func TestHub_Unsubscribe_Stops_Delivery(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// When bob leaves twice
	hub.Unsubscribe(bob)
	hub.Unsubscribe(bob)

	// Then he is closed and no longer receives anything
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: "bye"})
	req.Equal("bye", receive(t, alice).Body)
	requireNothing(t, bob)
	_, open := <-bob.Done()
	req.False(open)
	req.ErrorIs(bob.Consume(ctx, domain.Envelope{}), ErrSubscriberClosed)
}

func TestHub_Fanout_Slow_Subscriber_Does_Not_Block_Others(t *testing.T) {
	req := require.New(t)
	hub := newBufferedTestHub(t, 1, "general")
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})
	stuck := hub.Subscribe(domain.Identity{SubjectID: "stuck"})
	bodies := []string{"one", "two", "three", "four", "five", "six"}

	// Given a subscriber that never reads its buffer
	start := time.Now()
	for _, body := range bodies {
		// When alice keeps talking
		hub.Publish(context.Background(), alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: body})

		// Then bob gets every message at once
		req.Equal(body, receive(t, bob).Body)
		req.Equal(body, receive(t, alice).Body)
	}
	req.Less(time.Since(start), 2*deliveryTimeout)

	// And the stuck subscriber only kept what fitted in its buffer
	req.Equal("one", receive(t, stuck).Body)
	requireNothing(t, stuck)
}

func TestSubscriber_Consume_Drops_When_Buffer_Is_Full(t *testing.T) {
	req := require.New(t)
	sub := newSubscriber("s1", domain.Identity{SubjectID: "alice"}, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	req.NoError(sub.Consume(ctx, domain.Envelope{Body: "kept"}))

	start := time.Now()
	err := sub.Consume(ctx, domain.Envelope{Body: "dropped"})

	req.ErrorIs(err, ErrSubscriberBufferFull)
	req.Less(time.Since(start), deliveryTimeout)
	req.Equal("kept", (<-sub.Events()).Body)
}

func TestHub_Fanout_Blocking_Sink_Costs_At_Most_One_Timeout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := mocks.NewMockIRegistry(ctrl)
	slow := mocks.NewMockEventSink(ctrl)
	fast := mocks.NewMockEventSink(ctrl)
	hub := NewHub(log, registry, repositories.NewRoomRepository(), 16, deliveryTimeout)
	env := domain.Envelope{RoomName: "general", SenderID: "alice", Body: "hello"}

	// Given one sink that never drains and one that does
	registry.EXPECT().Sinks().Return([]contract.EventSink{slow, fast})
	slow.EXPECT().Consume(gomock.Any(), env).DoAndReturn(func(ctx context.Context, _ domain.Envelope) error {
		<-ctx.Done()
		return ctx.Err()
	})
	delivered := make(chan struct{})
	fast.EXPECT().Consume(gomock.Any(), env).DoAndReturn(func(context.Context, domain.Envelope) error {
		close(delivered)
		return nil
	})

	// When the envelope is broadcast
	start := time.Now()
	hub.Fanout(context.Background(), env)

	// Then the fast sink got it and the slow one cost no more than its timeout
	select {
	case <-delivered:
	default:
		req.Fail("fast sink was not delivered")
	}
	req.Less(time.Since(start), 10*deliveryTimeout)
}

func TestHub_Fanout_Survives_Sender_Cancellation(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// Given the sender already hung up
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When its last message is published
	hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: "last words"})

	// Then the receivers still get it
	req.Equal("last words", receive(t, bob).Body)
}

func TestHub_Concurrent_Subscribe_During_Broadcast(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	ctx := context.Background()
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	const n = 50

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			hub.Publish(ctx, alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: "spam"})
			<-alice.Events()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			sub := hub.Subscribe(domain.Identity{SubjectID: "guest"})
			hub.Unsubscribe(sub)
		}
	}()
	wg.Wait()

	// Then only alice is left
	req.Equal(1, hub.registry.Len())
}

func TestHub_Publish_Censors_Body(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := moderation.NewModerator([]string{"badger"}, '*', log)
	req.NoError(err)
	hub.WithModerator(mod)
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})

	// When alice uses a forbidden word
	hub.Publish(context.Background(), alice, domain.ChatMessage{Type: domain.MessageText, RoomName: "general", Body: "what a b4dger"})

	// Then the broadcast body is censored
	req.Equal("what a ******", receive(t, alice).Body)
}

func TestHub_Close_Ends_Every_Subscriber(t *testing.T) {
	req := require.New(t)
	hub := newTestHub(t, "general")
	alice := hub.Subscribe(domain.Identity{SubjectID: "alice"})
	bob := hub.Subscribe(domain.Identity{SubjectID: "bob"})

	// When the hub is closed
	hub.Close()

	// Then every live subscriber is done
	for _, sub := range []*Subscriber{alice, bob} {
		select {
		case <-sub.Done():
		default:
			req.Failf("subscriber still open", "subscriber %s", sub.ID)
		}
	}

	// And a late subscriber is closed straight away and never registered
	late := hub.Subscribe(domain.Identity{SubjectID: "carol"})
	<-late.Done()
	req.Equal(2, hub.registry.Len())

	// And leaving still empties the registry
	hub.Unsubscribe(alice)
	hub.Unsubscribe(bob)
	hub.Unsubscribe(late)
	req.Zero(hub.registry.Len())
}
