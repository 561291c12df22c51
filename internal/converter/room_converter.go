package converter

import (
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// RoomToResponse converts a Room entity to a RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:         room.ID,
		Type:       room.Type,
		IsOccupied: room.IsOccupied,
	}
}

// RoomsToResponses converts a slice of Room entities to RoomResponse DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = dto.RoomResponse{
			ID:         room.ID,
			Type:       room.Type,
			IsOccupied: room.IsOccupied,
		}
	}
	return responses
}
