package repositories

import (
	"chatroom/domain"
	"chatroom/errors"
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// RoomRepository is the in-memory owner of every room.
// Check-then-act sequences run under a single lock so that two
// concurrent creations of one name cannot both succeed.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]domain.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{rooms: make(map[string]domain.Room)}
}

// Create inserts the room if absent.
func (r *RoomRepository) Create(name string) (domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[name]; ok {
		return domain.Room{}, fmt.Errorf("%w: %s", errors.ErrRoomAlreadyExists, name)
	}
	room := domain.NewRoom(name)
	r.rooms[name] = room
	return room, nil
}

// Delete removes the room if present and returns the removed entry.
func (r *RoomRepository) Delete(name string) (domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[name]
	if !ok {
		return domain.Room{}, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, name)
	}
	delete(r.rooms, name)
	return room, nil
}

// List returns a snapshot. Order is unspecified.
func (r *RoomRepository) List() []domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.rooms)
}

func (r *RoomRepository) Find(name string) (domain.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[name]
	return room, ok
}

func (r *RoomRepository) Exists(name string) bool {
	_, ok := r.Find(name)
	return ok
}
