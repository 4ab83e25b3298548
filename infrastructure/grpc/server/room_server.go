package server

import (
	"chatroom/domain"
	"chatroom/errors"
	pb "chatroom/proto/chat"
	"chatroom/services"
	"context"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/emptypb"
)

type RoomServer struct {
	pb.UnimplementedChatRoomServiceServer
	roomService services.IRoomService
	log         *slog.Logger
}

func NewRoomServer(log *slog.Logger, roomService services.IRoomService) *RoomServer {
	return &RoomServer{roomService: roomService, log: log}
}

func (s *RoomServer) CreateRoom(ctx context.Context, req *pb.Room) (*pb.Room, error) {
	room, err := s.roomService.CreateRoom(ctx, req.GetName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toRoom(room), nil
}

func (s *RoomServer) DeleteRoom(ctx context.Context, req *pb.Room) (*pb.Room, error) {
	room, err := s.roomService.DeleteRoom(ctx, req.GetName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toRoom(room), nil
}

// GetRooms streams a snapshot of the registry, one room per message.
func (s *RoomServer) GetRooms(_ *emptypb.Empty, stream pb.ChatRoomService_GetRoomsServer) error {
	rooms := lo.Map(s.roomService.ListRooms(), func(r domain.Room, _ int) *pb.Room {
		return toRoom(r)
	})
	for _, room := range rooms {
		if err := stream.Send(room); err != nil {
			s.log.Debug("Room listing interrupted", "error", err)
			return err
		}
	}
	return nil
}

func toRoom(r domain.Room) *pb.Room {
	return &pb.Room{Name: r.Name}
}
