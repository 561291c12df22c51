package converter

import (
	"sort"

	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// PatientToCheckInResponse converts a checked-in patient and their
// assigned doctor to a CheckInResponse DTO
func PatientToCheckInResponse(patient *entity.Patient, doctor *entity.Doctor) *dto.CheckInResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.CheckInResponse{
		PatientID: patient.ID,
		Name:      patient.Name,
		Concern:   patient.Concern,
		Priority:  patient.Priority,
		DoctorID:  patient.DoctorID,
	}
	if doctor != nil {
		resp.DoctorName = doctor.Name
	}
	return resp
}

// DirectoryToPatientList converts the id-to-name directory to a sorted
// PatientListResponse (sorted by name for stable output)
func DirectoryToPatientList(names map[string]string) *dto.PatientListResponse {
	patients := make([]dto.PatientSummary, 0, len(names))
	for id, name := range names {
		patients = append(patients, dto.PatientSummary{ID: id, Name: name})
	}
	sort.Slice(patients, func(i, j int) bool {
		if patients[i].Name != patients[j].Name {
			return patients[i].Name < patients[j].Name
		}
		return patients[i].ID < patients[j].ID
	})

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}
}
