package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// DoctorRegistry tracks registered doctors keyed by identifier. Accessors
// return owned copies; callers never see live registry references.
type DoctorRegistry interface {
	Register(doctor *entity.Doctor)
	Remove(id string) bool
	Get(id string) (*entity.Doctor, bool)
	Has(id string) bool
	List() []entity.Doctor
	ListAvailable() []entity.Doctor
	SetAvailability(id string, inClinic bool) bool
}
