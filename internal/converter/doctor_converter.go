package converter

import (
	"github.com/smthh4/cc13.1-finals-project/internal/delivery/dto"
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:       doctor.ID,
		Name:     doctor.Name,
		InClinic: doctor.InClinic,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:       doctor.ID,
			Name:     doctor.Name,
			InClinic: doctor.InClinic,
		}
	}
	return responses
}
