package client

import (
	pb "chatroom/proto/chat"
)

// ShouldDisplay keeps the server notices and the messages of the joined room
// sent by somebody else. The server broadcasts every message to every client.
func ShouldDisplay(msg *pb.ChatMessageFromServer, room, self string) bool {
	if msg.GetFrom() == "" {
		return true
	}
	return msg.GetRoomName() == room && msg.GetFrom() != self
}
