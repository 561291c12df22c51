package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/converter"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
	"github.com/smthh4/cc13.1-finals-project/pkg/shortid"
)

var (
	ErrQueueEmpty         = errors.New("no patients in queue")
	ErrNoDoctorsAvailable = errors.New("no doctors are currently available")
	ErrNoRoomsAvailable   = errors.New("no rooms available")
	ErrInvalidPriority    = errors.New("priority level must be between 1 and 5")
)

type IntakeUsecase interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	TreatNext(ctx context.Context, req *dto.TreatNextRequest) (*dto.TreatmentOutcome, error)
	QueueStatus(ctx context.Context) *dto.QueueStatusResponse
}

type intakeUsecase struct {
	mu       *sync.Mutex
	log      *logrus.Logger
	doctors  repository.DoctorRegistry
	rooms    repository.RoomRegistry
	queue    repository.WaitingQueue
	patients repository.PatientDirectory
	history  repository.HistoryStore
}

func NewIntakeUsecase(
	mu *sync.Mutex,
	log *logrus.Logger,
	doctors repository.DoctorRegistry,
	rooms repository.RoomRegistry,
	queue repository.WaitingQueue,
	patients repository.PatientDirectory,
	history repository.HistoryStore,
) IntakeUsecase {
	return &intakeUsecase{
		mu:       mu,
		log:      log,
		doctors:  doctors,
		rooms:    rooms,
		queue:    queue,
		patients: patients,
		history:  history,
	}
}

// CheckIn registers a walk-in patient into the waiting queue with an
// assigned (not yet treating) doctor.
func (u *intakeUsecase) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if req.Priority < 1 || req.Priority > 5 {
		return nil, ErrInvalidPriority
	}

	if len(u.doctors.ListAvailable()) == 0 {
		return nil, ErrNoDoctorsAvailable
	}

	doctor, ok := u.doctors.Get(req.DoctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsAvailable() {
		return nil, ErrDoctorUnavailable
	}

	patientID, err := shortid.Generate(shortid.PatientPrefix, u.patients.Has)
	if err != nil {
		u.log.Errorf("Failed to generate patient id: %+v", err)
		return nil, err
	}

	patient := entity.NewPatient(patientID, req.Name, req.Concern, req.Priority)
	patient.AssignDoctor(doctor.ID)

	u.queue.Enqueue(patient)
	u.patients.Put(patientID, req.Name)

	u.log.Infof("Patient checked in: id=%s, priority=%d, doctor=%s", patientID, req.Priority, doctor.ID)
	return converter.PatientToCheckInResponse(patient, doctor), nil
}

// TreatNext runs one treatment episode for the highest-priority patient.
//
// Flow:
// 1. Dequeue the highest-priority patient
// 2. Confirm the assigned doctor is available, else apply the fallback
//    policy (wait -> requeue, reassign -> rebind to another available doctor)
// 3. Find an unoccupied room, else requeue
// 4. Mark doctor busy + room occupied, append the history record, restore both
//
// Every blocking condition returns the patient to the queue under the
// original priority; no doctor or room flag is touched before a room has
// been confirmed.
func (u *intakeUsecase) TreatNext(ctx context.Context, req *dto.TreatNextRequest) (*dto.TreatmentOutcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Step 1: dequeue
	patient, ok := u.queue.Dequeue()
	if !ok {
		return nil, ErrQueueEmpty
	}

	// Step 2: confirm the doctor
	doctor, found := u.doctors.Get(patient.DoctorID)
	if !found || !doctor.IsAvailable() {
		if req.DoctorFallback != dto.FallbackReassign {
			u.queue.Enqueue(patient)
			u.log.Infof("Patient %s requeued to wait for doctor %s", patient.ID, patient.DoctorID)
			return requeuedOutcome(patient, "waiting for assigned doctor"), nil
		}

		replacement, ok := u.pickReplacement(req.ReplacementDoctorID, patient.DoctorID)
		if !ok {
			u.queue.Enqueue(patient)
			u.log.Infof("Patient %s requeued, no replacement doctor available", patient.ID)
			return requeuedOutcome(patient, "no replacement doctor available"), nil
		}
		patient.AssignDoctor(replacement.ID)
		doctor = replacement
		u.log.Infof("Patient %s reassigned to doctor %s", patient.ID, doctor.ID)
	}

	// Step 3: find a room
	room, ok := u.rooms.FindFree()
	if !ok {
		u.queue.Enqueue(patient)
		u.log.Warnf("Patient %s requeued: %v", patient.ID, ErrNoRoomsAvailable)
		return nil, ErrNoRoomsAvailable
	}

	// Step 4: bind, record, release. Both flags flip together and are
	// restored together; nothing between them can fail.
	u.doctors.SetAvailability(doctor.ID, false)
	u.rooms.SetOccupied(room.ID, true)

	record := entity.HistoryRecord{
		Time:       time.Now(),
		DoctorName: doctor.Name,
		Diagnosis:  req.Diagnosis,
		Treatment:  req.Treatment,
	}
	u.history.Append(patient.ID, record)

	u.doctors.SetAvailability(doctor.ID, true)
	u.rooms.SetOccupied(room.ID, false)

	u.log.Infof("Treatment complete: patient=%s, doctor=%s, room=%s", patient.ID, doctor.ID, room.ID)
	return &dto.TreatmentOutcome{
		Status:      dto.OutcomeCompleted,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		RoomID:      room.ID,
		RoomType:    room.Type,
		Record:      converter.HistoryRecordToResponse(&record),
	}, nil
}

func (u *intakeUsecase) QueueStatus(ctx context.Context) *dto.QueueStatusResponse {
	u.mu.Lock()
	defer u.mu.Unlock()
	return &dto.QueueStatusResponse{Waiting: u.queue.Len()}
}

// pickReplacement resolves the reassign fallback: a named replacement must
// exist, be available and differ from the original doctor; with no name
// given, any available doctor other than the original is taken.
func (u *intakeUsecase) pickReplacement(replacementID, originalID string) (*entity.Doctor, bool) {
	if replacementID != "" {
		doctor, ok := u.doctors.Get(replacementID)
		if !ok || !doctor.IsAvailable() || doctor.ID == originalID {
			return nil, false
		}
		return doctor, true
	}

	for _, d := range u.doctors.ListAvailable() {
		if d.ID != originalID {
			candidate := d
			return &candidate, true
		}
	}
	return nil, false
}

func requeuedOutcome(patient *entity.Patient, reason string) *dto.TreatmentOutcome {
	return &dto.TreatmentOutcome{
		Status:      dto.OutcomeRequeued,
		Reason:      reason,
		PatientID:   patient.ID,
		PatientName: patient.Name,
	}
}
