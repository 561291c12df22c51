package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

type doctorRegistry struct {
	doctors map[string]*entity.Doctor
}

func NewDoctorRegistry() domainRepo.DoctorRegistry {
	return &doctorRegistry{
		doctors: make(map[string]*entity.Doctor),
	}
}

func (r *doctorRegistry) Register(doctor *entity.Doctor) {
	stored := *doctor
	r.doctors[doctor.ID] = &stored
}

func (r *doctorRegistry) Remove(id string) bool {
	if _, ok := r.doctors[id]; !ok {
		return false
	}
	delete(r.doctors, id)
	return true
}

// Get returns an owned copy so callers cannot mutate registry state.
func (r *doctorRegistry) Get(id string) (*entity.Doctor, bool) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, false
	}
	copied := *doctor
	return &copied, true
}

func (r *doctorRegistry) Has(id string) bool {
	_, ok := r.doctors[id]
	return ok
}

func (r *doctorRegistry) List() []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		doctors = append(doctors, *d)
	}
	return doctors
}

func (r *doctorRegistry) ListAvailable() []entity.Doctor {
	available := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if d.IsAvailable() {
			available = append(available, *d)
		}
	}
	return available
}

func (r *doctorRegistry) SetAvailability(id string, inClinic bool) bool {
	doctor, ok := r.doctors[id]
	if !ok {
		return false
	}
	doctor.InClinic = inClinic
	return true
}
