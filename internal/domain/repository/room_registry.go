package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// RoomRegistry tracks treatment rooms keyed by identifier. FindFree returns
// any unoccupied room; iteration order is unspecified.
type RoomRegistry interface {
	Add(room *entity.Room)
	Remove(id string) bool
	Get(id string) (*entity.Room, bool)
	Has(id string) bool
	List() []entity.Room
	FindFree() (*entity.Room, bool)
	SetOccupied(id string, occupied bool) bool
}
