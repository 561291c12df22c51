package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/converter"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
	"github.com/smthh4/cc13.1-finals-project/pkg/shortid"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomOccupied = errors.New("room is currently occupied")
)

type RoomUsecase interface {
	AddRoom(ctx context.Context, req *dto.AddRoomRequest) (*dto.RoomResponse, error)
	ListRooms(ctx context.Context) *dto.RoomListResponse
	RemoveRoom(ctx context.Context, id string) error
}

type roomUsecase struct {
	mu    *sync.Mutex
	log   *logrus.Logger
	rooms repository.RoomRegistry
}

func NewRoomUsecase(mu *sync.Mutex, log *logrus.Logger, rooms repository.RoomRegistry) RoomUsecase {
	return &roomUsecase{
		mu:    mu,
		log:   log,
		rooms: rooms,
	}
}

func (u *roomUsecase) AddRoom(ctx context.Context, req *dto.AddRoomRequest) (*dto.RoomResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	roomID, err := shortid.Generate(shortid.RoomPrefix, u.rooms.Has)
	if err != nil {
		u.log.Errorf("Failed to generate room id: %+v", err)
		return nil, err
	}

	room := entity.NewRoom(roomID, req.Type)
	u.rooms.Add(room)

	u.log.Infof("Room added: id=%s, type=%s", roomID, req.Type)
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) ListRooms(ctx context.Context) *dto.RoomListResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	rooms := u.rooms.List()
	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}
}

// RemoveRoom deletes a room. Removal is refused while the occupancy flag
// is set, which a reloaded state file can legitimately carry.
func (u *roomUsecase) RemoveRoom(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	room, ok := u.rooms.Get(id)
	if !ok {
		return ErrRoomNotFound
	}
	if room.IsOccupied {
		return ErrRoomOccupied
	}

	u.rooms.Remove(id)
	u.log.Infof("Room removed: id=%s", id)
	return nil
}
