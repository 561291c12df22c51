package dto

// Request DTOs

type AddRoomRequest struct {
	Type string `json:"type" validate:"required"`
}

// Response DTOs

type RoomResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	IsOccupied bool   `json:"is_occupied"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
