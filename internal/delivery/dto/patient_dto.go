package dto

// Request DTOs

type CheckInRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Concern  string `json:"concern" validate:"required"`
	Priority int    `json:"priority" validate:"required,gte=1,lte=5"`
	DoctorID string `json:"doctor_id" validate:"required"`
}

// Response DTOs

type CheckInResponse struct {
	PatientID  string `json:"patient_id"`
	Name       string `json:"name"`
	Concern    string `json:"concern"`
	Priority   int    `json:"priority"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
}

type PatientSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PatientListResponse struct {
	Patients []PatientSummary `json:"patients"`
	Total    int              `json:"total"`
}

type QueueStatusResponse struct {
	Waiting int `json:"waiting"`
}
