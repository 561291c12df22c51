package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

type historyStore struct {
	records map[string][]entity.HistoryRecord
}

func NewHistoryStore() domainRepo.HistoryStore {
	return &historyStore{
		records: make(map[string][]entity.HistoryRecord),
	}
}

func (s *historyStore) Append(patientID string, record entity.HistoryRecord) {
	s.records[patientID] = append(s.records[patientID], record)
}

func (s *historyStore) Records(patientID string) []entity.HistoryRecord {
	stored := s.records[patientID]
	copied := make([]entity.HistoryRecord, len(stored))
	copy(copied, stored)
	return copied
}

func (s *historyStore) All() map[string][]entity.HistoryRecord {
	copied := make(map[string][]entity.HistoryRecord, len(s.records))
	for id, records := range s.records {
		recordsCopy := make([]entity.HistoryRecord, len(records))
		copy(recordsCopy, records)
		copied[id] = recordsCopy
	}
	return copied
}
