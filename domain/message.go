// Package domain contains core concepts of the chat system.
// Messages are immutable once built; the sender always comes from the call identity.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var errBlankPadded = errors.New("name must not start or end with blanks")

type MessageType int

const (
	MessageText MessageType = iota
	MessageJoin
	MessageLeave
)

func (t MessageType) String() string {
	switch t {
	case MessageText:
		return "TEXT"
	case MessageJoin:
		return "JOIN"
	case MessageLeave:
		return "LEAVE"
	default:
		return "UNKNOWN"
	}
}

// ChatMessage is an inbound chat event as received from a subscriber.
type ChatMessage struct {
	Type     MessageType
	RoomName string
	Body     string
}

// Envelope is what the hub pushes to subscribers.
type Envelope struct {
	Timestamp time.Time
	Type      MessageType
	RoomName  string
	SenderID  string
	Body      string
	Notice    bool
}

func NewEnvelope(at time.Time, sender string, msg ChatMessage) Envelope {
	return Envelope{
		Timestamp: at,
		Type:      msg.Type,
		RoomName:  msg.RoomName,
		SenderID:  sender,
		Body:      msg.Body,
	}
}

// NewRoomMissingNotice is the in-band answer to a message targeting an unknown room.
func NewRoomMissingNotice(at time.Time, roomName string) Envelope {
	return Envelope{
		Timestamp: at,
		Body:      fmt.Sprintf("Room does not exist: %s", roomName),
		Notice:    true,
	}
}
