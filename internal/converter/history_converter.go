package converter

import (
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// HistoryRecordToResponse converts a HistoryRecord entity to a
// HistoryRecordResponse DTO
func HistoryRecordToResponse(record *entity.HistoryRecord) *dto.HistoryRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HistoryRecordResponse{
		Time:       record.Time,
		DoctorName: record.DoctorName,
		Diagnosis:  record.Diagnosis,
		Treatment:  record.Treatment,
	}
}

// HistoryRecordsToResponses converts a slice of HistoryRecord entities to
// HistoryRecordResponse DTOs
func HistoryRecordsToResponses(records []entity.HistoryRecord) []dto.HistoryRecordResponse {
	responses := make([]dto.HistoryRecordResponse, len(records))
	for i, record := range records {
		responses[i] = dto.HistoryRecordResponse{
			Time:       record.Time,
			DoctorName: record.DoctorName,
			Diagnosis:  record.Diagnosis,
			Treatment:  record.Treatment,
		}
	}
	return responses
}
