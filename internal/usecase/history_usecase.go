package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/converter"
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

var ErrPatientNotFound = errors.New("patient not found")

type HistoryUsecase interface {
	ViewHistory(ctx context.Context, patientID string) (*dto.HistoryResponse, error)
	ListPatients(ctx context.Context) *dto.PatientListResponse
}

type historyUsecase struct {
	mu       *sync.Mutex
	log      *logrus.Logger
	patients repository.PatientDirectory
	history  repository.HistoryStore
}

func NewHistoryUsecase(
	mu *sync.Mutex,
	log *logrus.Logger,
	patients repository.PatientDirectory,
	history repository.HistoryStore,
) HistoryUsecase {
	return &historyUsecase{
		mu:       mu,
		log:      log,
		patients: patients,
		history:  history,
	}
}

// ViewHistory returns the chronological treatment records for a known
// patient. A patient with no completed treatments yields an empty list;
// that is not an error.
func (u *historyUsecase) ViewHistory(ctx context.Context, patientID string) (*dto.HistoryResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	name, ok := u.patients.Name(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}

	records := u.history.Records(patientID)
	return &dto.HistoryResponse{
		PatientID:   patientID,
		PatientName: name,
		Records:     converter.HistoryRecordsToResponses(records),
		Total:       len(records),
	}, nil
}

func (u *historyUsecase) ListPatients(ctx context.Context) *dto.PatientListResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	return converter.DirectoryToPatientList(u.patients.All())
}
