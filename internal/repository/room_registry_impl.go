package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

type roomRegistry struct {
	rooms map[string]*entity.Room
}

func NewRoomRegistry() domainRepo.RoomRegistry {
	return &roomRegistry{
		rooms: make(map[string]*entity.Room),
	}
}

func (r *roomRegistry) Add(room *entity.Room) {
	stored := *room
	r.rooms[room.ID] = &stored
}

func (r *roomRegistry) Remove(id string) bool {
	if _, ok := r.rooms[id]; !ok {
		return false
	}
	delete(r.rooms, id)
	return true
}

func (r *roomRegistry) Get(id string) (*entity.Room, bool) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, false
	}
	copied := *room
	return &copied, true
}

func (r *roomRegistry) Has(id string) bool {
	_, ok := r.rooms[id]
	return ok
}

func (r *roomRegistry) List() []entity.Room {
	rooms := make([]entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, *room)
	}
	return rooms
}

// FindFree returns a copy of any unoccupied room; map iteration order
// makes the pick unspecified.
func (r *roomRegistry) FindFree() (*entity.Room, bool) {
	for _, room := range r.rooms {
		if room.IsFree() {
			copied := *room
			return &copied, true
		}
	}
	return nil, false
}

func (r *roomRegistry) SetOccupied(id string, occupied bool) bool {
	room, ok := r.rooms[id]
	if !ok {
		return false
	}
	room.IsOccupied = occupied
	return true
}
