package dto

// Doctor fallback policies for treat-next when the assigned doctor is
// unavailable. An empty value means wait.
const (
	FallbackWait     = "wait"
	FallbackReassign = "reassign"
)

// Treatment outcome statuses.
const (
	OutcomeCompleted = "completed"
	OutcomeRequeued  = "requeued"
)

// Request DTOs

type TreatNextRequest struct {
	// DoctorFallback decides what happens when the assigned doctor is
	// unavailable: wait re-queues the patient, reassign rebinds them to
	// ReplacementDoctorID (or any available doctor when empty).
	DoctorFallback      string `json:"doctor_fallback" validate:"omitempty,oneof=wait reassign"`
	ReplacementDoctorID string `json:"replacement_doctor_id" validate:"omitempty"`
	Diagnosis           string `json:"diagnosis" validate:"required"`
	Treatment           string `json:"treatment" validate:"required"`
}

// Response DTOs

type TreatmentOutcome struct {
	Status      string                 `json:"status"`
	Reason      string                 `json:"reason,omitempty"`
	PatientID   string                 `json:"patient_id"`
	PatientName string                 `json:"patient_name"`
	DoctorID    string                 `json:"doctor_id,omitempty"`
	DoctorName  string                 `json:"doctor_name,omitempty"`
	RoomID      string                 `json:"room_id,omitempty"`
	RoomType    string                 `json:"room_type,omitempty"`
	Record      *HistoryRecordResponse `json:"record,omitempty"`
}
