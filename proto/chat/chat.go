// Package chat holds the messages and service descriptors of the chat API.
// Messages are carried by the json codec (see proto/codec).
package chat

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

type MessageType int32

const (
	MessageType_TEXT  MessageType = 0
	MessageType_JOIN  MessageType = 1
	MessageType_LEAVE MessageType = 2
)

var MessageType_name = map[MessageType]string{
	MessageType_TEXT:  "TEXT",
	MessageType_JOIN:  "JOIN",
	MessageType_LEAVE: "LEAVE",
}

func (t MessageType) String() string {
	if name, ok := MessageType_name[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Room struct {
	Name string `json:"name"`
}

func (r *Room) GetName() string {
	if r == nil {
		return ""
	}
	return r.Name
}

// ChatMessage is sent by a client on the Chat stream.
type ChatMessage struct {
	Type     MessageType `json:"type"`
	RoomName string      `json:"room_name"`
	Message  string      `json:"message"`
}

func (m *ChatMessage) GetType() MessageType {
	if m == nil {
		return MessageType_TEXT
	}
	return m.Type
}

func (m *ChatMessage) GetRoomName() string {
	if m == nil {
		return ""
	}
	return m.RoomName
}

func (m *ChatMessage) GetMessage() string {
	if m == nil {
		return ""
	}
	return m.Message
}

// ChatMessageFromServer is pushed by the server on the Chat stream.
// A notice only carries Timestamp and Message.
type ChatMessageFromServer struct {
	Timestamp *timestamppb.Timestamp `json:"timestamp,omitempty"`
	Type      MessageType            `json:"type"`
	RoomName  string                 `json:"room_name,omitempty"`
	From      string                 `json:"from,omitempty"`
	Message   string                 `json:"message"`
}

func (m *ChatMessageFromServer) GetTimestamp() *timestamppb.Timestamp {
	if m == nil {
		return nil
	}
	return m.Timestamp
}

func (m *ChatMessageFromServer) GetType() MessageType {
	if m == nil {
		return MessageType_TEXT
	}
	return m.Type
}

func (m *ChatMessageFromServer) GetRoomName() string {
	if m == nil {
		return ""
	}
	return m.RoomName
}

func (m *ChatMessageFromServer) GetFrom() string {
	if m == nil {
		return ""
	}
	return m.From
}

func (m *ChatMessageFromServer) GetMessage() string {
	if m == nil {
		return ""
	}
	return m.Message
}
