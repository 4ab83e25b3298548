//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatroom/domain"
	"context"
)

// IAuthority is the identity authority as seen by the chat server.
// Implementations map transport failures to errors.ErrAuthorityUnavailable.
type IAuthority interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	Authorize(ctx context.Context, token string) (domain.Authorization, error)
}

// IGate guards privileged operations.
type IGate interface {
	Require(ctx context.Context, role string) error
}

type IRoomRepository interface {
	Create(name string) (domain.Room, error)
	Delete(name string) (domain.Room, error)
	List() []domain.Room
	Find(name string) (domain.Room, bool)
	Exists(name string) bool
}

// EventSink receives envelopes for one subscriber.
type EventSink interface {
	Consume(ctx context.Context, e domain.Envelope) error
}

type IRegistry interface {
	Subscribe(subscriberID string, sink EventSink)
	Unsubscribe(subscriberID string) bool
	Sinks() []EventSink
	Len() int
}
