package dto

import "time"

// Response DTOs

type HistoryRecordResponse struct {
	Time       time.Time `json:"time"`
	DoctorName string    `json:"doctor_name"`
	Diagnosis  string    `json:"diagnosis"`
	Treatment  string    `json:"treatment"`
}

type HistoryResponse struct {
	PatientID   string                  `json:"patient_id"`
	PatientName string                  `json:"patient_name"`
	Records     []HistoryRecordResponse `json:"records"`
	Total       int                     `json:"total"`
}
