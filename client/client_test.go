package client

import (
	pb "chatroom/proto/chat"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldDisplay(t *testing.T) {
	tests := []struct {
		name     string
		msg      *pb.ChatMessageFromServer
		expected bool
	}{
		{"other sender in joined room", &pb.ChatMessageFromServer{RoomName: "general", From: "bob"}, true},
		{"own message", &pb.ChatMessageFromServer{RoomName: "general", From: "alice"}, false},
		{"other room", &pb.ChatMessageFromServer{RoomName: "random", From: "bob"}, false},
		{"server notice", &pb.ChatMessageFromServer{Message: "Room does not exist: ghost"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ShouldDisplay(tt.msg, "general", "alice"))
		})
	}
}

func TestTokenCredentials(t *testing.T) {
	req := require.New(t)
	creds := NewTokenCredentials("jwt", true)

	md, err := creds.GetRequestMetadata(context.Background())

	req.NoError(err)
	req.Equal("Bearer jwt", md["authorization"])
	req.False(creds.RequireTransportSecurity())
	req.True(NewTokenCredentials("jwt", false).RequireTransportSecurity())
}
