package entity

// Room represents a treatment room. IsOccupied is true exactly while the
// room hosts an in-progress treatment.
type Room struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	IsOccupied bool   `json:"is_occupied"`
}

// NewRoom creates an unoccupied room.
func NewRoom(id, roomType string) *Room {
	return &Room{ID: id, Type: roomType}
}

// IsFree checks whether the room can host a treatment.
func (r *Room) IsFree() bool {
	return !r.IsOccupied
}
