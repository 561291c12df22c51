package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// HistoryStore keeps the append-only treatment history per patient,
// ordered by completion time.
type HistoryStore interface {
	Append(patientID string, record entity.HistoryRecord)
	// Records returns owned copies; an unknown patient yields an empty slice.
	Records(patientID string) []entity.HistoryRecord
	All() map[string][]entity.HistoryRecord
}
