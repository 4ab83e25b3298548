package server

import (
	"chatroom/auth"
	"chatroom/domain"
	"chatroom/errors"
	pb "chatroom/proto/chat"
	"chatroom/services"
	stderrors "errors"
	"io"
	"log/slog"

	"google.golang.org/protobuf/types/known/timestamppb"
)

type ChatStreamServer struct {
	pb.UnimplementedChatStreamServiceServer
	chatService services.IChatService
	log         *slog.Logger
}

func NewChatStreamServer(log *slog.Logger, chatService services.IChatService) *ChatStreamServer {
	return &ChatStreamServer{chatService: chatService, log: log}
}

// Chat binds the stream to one subscriber of the hub.
// Inbound messages are read in a dedicated goroutine while this goroutine is the
// only one sending on the stream. The subscriber is released however the stream ends,
// and the stream ends when the hub closes the subscriber.
func (s *ChatStreamServer) Chat(stream pb.ChatStreamService_ChatServer) error {
	ctx := stream.Context()
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return errors.MapToGRPCError(errors.ErrTokenMissing)
	}

	sub := s.chatService.Join(identity)
	defer s.chatService.Leave(sub)

	errCh := make(chan error, 1)
	go func() {
		for {
			in, err := stream.Recv()
			if err != nil {
				errCh <- err
				return
			}
			s.chatService.PostMessage(ctx, sub, toChatMessage(in))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Chat stream cancelled", "subscriber_id", sub.ID, "subject", identity.SubjectID)
			return nil
		case <-sub.Done():
			s.log.Debug("Chat stream closed by server", "subscriber_id", sub.ID, "subject", identity.SubjectID)
			return errors.MapToGRPCError(errors.ErrServerShuttingDown)
		case err := <-errCh:
			if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
				s.log.Debug("Chat stream closed by client", "subscriber_id", sub.ID)
				return nil
			}
			s.log.Warn("Chat stream receive failed", "subscriber_id", sub.ID, "error", err)
			return err
		case env := <-sub.Events():
			if err := stream.Send(toMessageFromServer(env)); err != nil {
				s.log.Error("Failed to push envelope to stream",
					"subscriber_id", sub.ID,
					"room", env.RoomName,
					"error", err)
				return err
			}
		}
	}
}

func toChatMessage(m *pb.ChatMessage) domain.ChatMessage {
	return domain.ChatMessage{
		Type:     domain.MessageType(m.GetType()),
		RoomName: m.GetRoomName(),
		Body:     m.GetMessage(),
	}
}

func toMessageFromServer(e domain.Envelope) *pb.ChatMessageFromServer {
	return &pb.ChatMessageFromServer{
		Timestamp: timestamppb.New(e.Timestamp),
		Type:      pb.MessageType(e.Type),
		RoomName:  e.RoomName,
		From:      e.SenderID,
		Message:   e.Body,
	}
}
