package dto

// Request DTOs

type RegisterDoctorRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type SetAvailabilityRequest struct {
	InClinic *bool `json:"in_clinic" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	InClinic bool   `json:"in_clinic"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
