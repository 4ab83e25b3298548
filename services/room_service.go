package services

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"context"
	"fmt"
	"log/slog"
)

type IRoomService interface {
	CreateRoom(ctx context.Context, name string) (domain.Room, error)
	DeleteRoom(ctx context.Context, name string) (domain.Room, error)
	ListRooms() []domain.Room
}

// RoomService guards room mutations behind the admin role.
type RoomService struct {
	gate  contract.IGate
	rooms contract.IRoomRepository
	log   *slog.Logger
}

func NewRoomService(gate contract.IGate, rooms contract.IRoomRepository, log *slog.Logger) *RoomService {
	return &RoomService{gate: gate, rooms: rooms, log: log}
}

func (s *RoomService) CreateRoom(ctx context.Context, name string) (domain.Room, error) {
	if err := s.gate.Require(ctx, domain.RoleAdmin); err != nil {
		return domain.Room{}, err
	}
	if err := domain.NewRoom(name).Validate(); err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", errors.ErrInvalidRoomName, err)
	}

	room, err := s.rooms.Create(name)
	if err != nil {
		return domain.Room{}, err
	}
	s.log.Info("Room created", "room", room.Name)
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, name string) (domain.Room, error) {
	if err := s.gate.Require(ctx, domain.RoleAdmin); err != nil {
		return domain.Room{}, err
	}

	room, err := s.rooms.Delete(name)
	if err != nil {
		return domain.Room{}, err
	}
	s.log.Info("Room deleted", "room", room.Name)
	return room, nil
}

func (s *RoomService) ListRooms() []domain.Room {
	return s.rooms.List()
}
