package usecase

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

// StateUsecase moves the full clinic state across the persistence
// boundary: Load seeds the in-memory stores at startup, Save rewrites the
// durable representation at shutdown. Failures are logged and absorbed; a
// failed load starts the clinic empty, a failed save keeps memory intact.
type StateUsecase interface {
	Load() error
	Save() error
}

type stateUsecase struct {
	mu       *sync.Mutex
	log      *logrus.Logger
	store    repository.StateStore
	doctors  repository.DoctorRegistry
	rooms    repository.RoomRegistry
	queue    repository.WaitingQueue
	patients repository.PatientDirectory
	history  repository.HistoryStore
}

func NewStateUsecase(
	mu *sync.Mutex,
	log *logrus.Logger,
	store repository.StateStore,
	doctors repository.DoctorRegistry,
	rooms repository.RoomRegistry,
	queue repository.WaitingQueue,
	patients repository.PatientDirectory,
	history repository.HistoryStore,
) StateUsecase {
	return &stateUsecase{
		mu:       mu,
		log:      log,
		store:    store,
		doctors:  doctors,
		rooms:    rooms,
		queue:    queue,
		patients: patients,
		history:  history,
	}
}

func (u *stateUsecase) Load() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	state, err := u.store.Load()
	if err != nil {
		u.log.Warnf("Failed to load clinic state, starting empty: %+v", err)
		return err
	}

	for id, name := range state.PatientNames {
		u.patients.Put(id, name)
	}
	for i := range state.Doctors {
		u.doctors.Register(&state.Doctors[i])
	}
	for i := range state.Rooms {
		u.rooms.Add(&state.Rooms[i])
	}
	for i := range state.Queue {
		u.queue.Enqueue(&state.Queue[i])
	}
	for id, records := range state.History {
		for _, record := range records {
			u.history.Append(id, record)
		}
	}

	u.log.Infof("Clinic state loaded: patients=%d, doctors=%d, rooms=%d, queued=%d",
		u.patients.Len(), len(state.Doctors), len(state.Rooms), u.queue.Len())
	return nil
}

func (u *stateUsecase) Save() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	state := &entity.ClinicState{
		PatientNames: u.patients.All(),
		Doctors:      u.doctors.List(),
		Rooms:        u.rooms.List(),
		Queue:        u.queue.Snapshot(),
		History:      u.history.All(),
	}

	if err := u.store.Save(state); err != nil {
		u.log.Errorf("Failed to save clinic state: %+v", err)
		return err
	}

	u.log.Info("Clinic state saved")
	return nil
}
