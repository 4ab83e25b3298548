package runtime

import (
	"chatroom/domain"
	"context"
	"errors"
	"sync"
)

var (
	ErrSubscriberClosed     = errors.New("subscriber closed")
	ErrSubscriberBufferFull = errors.New("subscriber buffer full")
)

// Subscriber is one open Chat stream. It is the hub's EventSink for that client:
// envelopes are buffered and drained by the stream's sending goroutine.
type Subscriber struct {
	ID        string
	Identity  domain.Identity
	events    chan domain.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

func newSubscriber(id string, identity domain.Identity, bufferSize int) *Subscriber {
	return &Subscriber{
		ID:       id,
		Identity: identity,
		events:   make(chan domain.Envelope, bufferSize),
		done:     make(chan struct{}),
	}
}

// Events is read by the owner of the stream only.
func (s *Subscriber) Events() <-chan domain.Envelope {
	return s.events
}

// Done is closed once the subscriber left the hub.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// Consume never blocks: the envelope is dropped when the buffer is full.
// Nothing is delivered once the subscriber is closed.
func (s *Subscriber) Consume(_ context.Context, e domain.Envelope) error {
	select {
	case <-s.done:
		return ErrSubscriberClosed
	default:
	}

	select {
	case s.events <- e:
		return nil
	default:
		return ErrSubscriberBufferFull
	}
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() { close(s.done) })
}
