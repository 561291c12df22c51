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
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorUnavailable = errors.New("doctor is currently unavailable")
	ErrDoctorAssigned    = errors.New("doctor is assigned to patients in the waiting queue")
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) *dto.DoctorListResponse
	ListAvailableDoctors(ctx context.Context) *dto.DoctorListResponse
	SetAvailability(ctx context.Context, id string, req *dto.SetAvailabilityRequest) (*dto.DoctorResponse, error)
	RemoveDoctor(ctx context.Context, id string) error
}

type doctorUsecase struct {
	mu      *sync.Mutex
	log     *logrus.Logger
	doctors repository.DoctorRegistry
	queue   repository.WaitingQueue
}

func NewDoctorUsecase(
	mu *sync.Mutex,
	log *logrus.Logger,
	doctors repository.DoctorRegistry,
	queue repository.WaitingQueue,
) DoctorUsecase {
	return &doctorUsecase{
		mu:      mu,
		log:     log,
		doctors: doctors,
		queue:   queue,
	}
}

func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	doctorID, err := shortid.Generate(shortid.DoctorPrefix, u.doctors.Has)
	if err != nil {
		u.log.Errorf("Failed to generate doctor id: %+v", err)
		return nil, err
	}

	doctor := entity.NewDoctor(doctorID, req.Name)
	u.doctors.Register(doctor)

	u.log.Infof("Doctor registered: id=%s, name=%s", doctorID, req.Name)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) *dto.DoctorListResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	doctors := u.doctors.List()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *doctorUsecase) ListAvailableDoctors(ctx context.Context) *dto.DoctorListResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	available := u.doctors.ListAvailable()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(available),
		Total:   len(available),
	}
}

func (u *doctorUsecase) SetAvailability(ctx context.Context, id string, req *dto.SetAvailabilityRequest) (*dto.DoctorResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.doctors.SetAvailability(id, *req.InClinic) {
		return nil, ErrDoctorNotFound
	}

	doctor, _ := u.doctors.Get(id)
	u.log.Infof("Doctor %s availability set to %t", id, *req.InClinic)
	return converter.DoctorToResponse(doctor), nil
}

// RemoveDoctor deregisters a doctor. Removal is refused while any queued
// patient is still assigned to them, which would orphan the reference.
func (u *doctorUsecase) RemoveDoctor(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.doctors.Has(id) {
		return ErrDoctorNotFound
	}

	for _, patient := range u.queue.Snapshot() {
		if patient.DoctorID == id {
			return ErrDoctorAssigned
		}
	}

	u.doctors.Remove(id)
	u.log.Infof("Doctor removed: id=%s", id)
	return nil
}
