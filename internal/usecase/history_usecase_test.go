package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
	"github.com/smthh4/cc13.1-finals-project/internal/repository"
)

func newHistoryUsecase() (HistoryUsecase, domainRepo.PatientDirectory, domainRepo.HistoryStore) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	var mu sync.Mutex
	patients := repository.NewPatientDirectory()
	history := repository.NewHistoryStore()
	return NewHistoryUsecase(&mu, log, patients, history), patients, history
}

func TestViewHistory(t *testing.T) {
	u, patients, history := newHistoryUsecase()
	patients.Put("P1", "Ana")
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	history.Append("P1", entity.HistoryRecord{Time: base, DoctorName: "Dr. Smith", Diagnosis: "flu", Treatment: "rest"})
	history.Append("P1", entity.HistoryRecord{Time: base.Add(time.Hour), DoctorName: "Dr. Jones", Diagnosis: "sprain", Treatment: "ice"})

	resp, err := u.ViewHistory(context.Background(), "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PatientName != "Ana" || resp.Total != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Records[0].Diagnosis != "flu" || resp.Records[1].Diagnosis != "sprain" {
		t.Errorf("records out of chronological order: %+v", resp.Records)
	}
}

func TestViewHistory_NoRecordsIsNotAnError(t *testing.T) {
	u, patients, _ := newHistoryUsecase()
	patients.Put("P1", "Ana")

	resp, err := u.ViewHistory(context.Background(), "P1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 || len(resp.Records) != 0 {
		t.Errorf("expected empty history, got %+v", resp)
	}
}

func TestViewHistory_UnknownPatient(t *testing.T) {
	u, _, _ := newHistoryUsecase()

	_, err := u.ViewHistory(context.Background(), "nobody")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestListPatients(t *testing.T) {
	u, patients, _ := newHistoryUsecase()
	patients.Put("P2", "Bea")
	patients.Put("P1", "Ana")

	resp := u.ListPatients(context.Background())
	if resp.Total != 2 {
		t.Fatalf("expected 2 patients, got %d", resp.Total)
	}
	if resp.Patients[0].Name != "Ana" || resp.Patients[1].Name != "Bea" {
		t.Errorf("expected name-sorted listing, got %+v", resp.Patients)
	}
}
