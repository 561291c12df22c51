package entity

import "time"

// HistoryRecord is the immutable evidence of one completed treatment.
// It snapshots the treating doctor's name rather than the identifier, so
// the record stays meaningful after the doctor is deregistered.
type HistoryRecord struct {
	Time       time.Time `json:"time"`
	DoctorName string    `json:"doctor_name"`
	Diagnosis  string    `json:"diagnosis"`
	Treatment  string    `json:"treatment"`
}
