package server

import (
	"chatroom/auth"
	pbaccount "chatroom/proto/account"
	pbchat "chatroom/proto/chat"
	"log/slog"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
)

// NewChatGRPCServer registers the room and stream services behind the token check.
// Every call, streams included, is authenticated before its handler runs.
func NewChatGRPCServer(log *slog.Logger, authenticator *auth.Authenticator,
	roomServer *RoomServer, chatStreamServer *ChatStreamServer) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			authenticator.Unary(),
		),
		grpc.ChainStreamInterceptor(authenticator.Stream()),
	)
	pbchat.RegisterChatRoomServiceServer(s, roomServer)
	pbchat.RegisterChatStreamServiceServer(s, chatStreamServer)
	return s
}

// NewAuthGRPCServer exposes the identity authority. Its calls carry no token.
func NewAuthGRPCServer(log *slog.Logger, authServer *AuthServer) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	pbaccount.RegisterAuthenticationServiceServer(s, authServer)
	return s
}
