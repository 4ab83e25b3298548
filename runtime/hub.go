package runtime

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/moderation"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Hub is the broadcast bus of the chat server.
//
// Delivery is global: an envelope for an existing room goes to every connected
// subscriber, whatever room it last mentioned. Clients filter on room name and
// sender themselves. The room only has to exist when the message is published;
// a concurrent deletion is not prevented.
//
// Hub is safe for concurrent use by multiple goroutines.
type Hub struct {
	log             *slog.Logger
	registry        contract.IRegistry
	rooms           contract.IRoomRepository
	moderator       *moderation.Moderator
	bufferSize      int
	deliveryTimeout time.Duration
	now             func() time.Time
	closed          atomic.Bool
}

func NewHub(log *slog.Logger, registry contract.IRegistry, rooms contract.IRoomRepository,
	bufferSize int, deliveryTimeout time.Duration) *Hub {
	return &Hub{
		log:             log,
		registry:        registry,
		rooms:           rooms,
		bufferSize:      bufferSize,
		deliveryTimeout: deliveryTimeout,
		now:             time.Now,
	}
}

// WithModerator censors message bodies before they are broadcast.
func (h *Hub) WithModerator(moderator *moderation.Moderator) *Hub {
	h.moderator = moderator
	return h
}

// Subscribe registers a new open subscriber for the identity of one stream.
// Once the hub is closed the subscriber is returned already closed.
func (h *Hub) Subscribe(identity domain.Identity) *Subscriber {
	sub := newSubscriber(uuid.NewString(), identity, h.bufferSize)
	if h.closed.Load() {
		sub.close()
		return sub
	}
	h.registry.Subscribe(sub.ID, sub)
	h.log.Info("Subscriber connected",
		"subscriber_id", sub.ID,
		"subject", identity.SubjectID,
		"subscribers", h.registry.Len())
	return sub
}

// Unsubscribe closes the subscriber and removes it from the live set.
// Calling it more than once is harmless.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	sub.close()
	if h.registry.Unsubscribe(sub.ID) {
		h.log.Info("Subscriber disconnected",
			"subscriber_id", sub.ID,
			"subject", sub.Identity.SubjectID,
			"subscribers", h.registry.Len())
	}
}

// Close closes every live subscriber so their streams end.
// It is called on shutdown, before the gRPC server drains.
func (h *Hub) Close() {
	h.closed.Store(true)
	sinks := h.registry.Sinks()
	for _, sink := range sinks {
		if sub, ok := sink.(*Subscriber); ok {
			sub.close()
		}
	}
	h.log.Info("Hub closed", "subscribers", len(sinks))
}

// Publish handles one inbound message of a subscriber.
// An unknown room yields a notice for the sender only; this is not an error.
func (h *Hub) Publish(ctx context.Context, from *Subscriber, msg domain.ChatMessage) {
	at := h.now().UTC()

	if !h.rooms.Exists(msg.RoomName) {
		h.log.Debug("Message for unknown room", "subscriber_id", from.ID, "room", msg.RoomName)
		h.deliver(ctx, from, domain.NewRoomMissingNotice(at, msg.RoomName))
		return
	}

	if h.moderator != nil {
		var censored []string
		msg.Body, censored = h.moderator.Censor(msg.Body)
		if len(censored) > 0 {
			h.log.Info("Message censored", "subscriber_id", from.ID, "room", msg.RoomName, "words", censored)
		}
	}
	h.Fanout(ctx, domain.NewEnvelope(at, from.Identity.SubjectID, msg))
}

// Fanout delivers the envelope to a snapshot of the live subscribers.
// A subscriber whose buffer is full loses the envelope at once. Other sinks
// run in their own goroutine, bounded by the delivery timeout. Fanout returns
// when every delivery ended, which keeps a sender's messages in order for
// each receiver.
func (h *Hub) Fanout(ctx context.Context, env domain.Envelope) {
	sinks := h.registry.Sinks()

	var wg sync.WaitGroup
	for _, sink := range sinks {
		wg.Add(1)
		go func(s contract.EventSink) {
			defer wg.Done()
			h.deliver(ctx, s, env)
		}(sink)
	}
	wg.Wait()

	h.log.Debug("Envelope broadcast", "room", env.RoomName, "from", env.SenderID, "subscribers", len(sinks))
}

// deliver detaches from the sender's cancellation: receivers still get the
// envelope if the sender hangs up in the meantime.
func (h *Hub) deliver(ctx context.Context, sink contract.EventSink, env domain.Envelope) {
	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.deliveryTimeout)
	defer cancel()

	if err := sink.Consume(sinkCtx, env); err != nil {
		h.log.Warn("Envelope dropped", "room", env.RoomName, "error", err)
	}
}
