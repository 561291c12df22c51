package entity

// DoctorUnassigned is the placeholder doctor reference a patient carries
// before check-in binds one.
const DoctorUnassigned = "unassigned"

// Patient represents a walk-in patient waiting for treatment.
// A patient lives in the waiting queue from check-in until treated;
// afterwards only the name directory entry and the history remain.
type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Concern  string `json:"concern"`
	Priority int    `json:"priority"` // 1 = most urgent, 5 = least urgent
	DoctorID string `json:"doctor_id"`
	RoomID   string `json:"room_id,omitempty"`
}

// NewPatient creates a checked-in patient with no doctor bound yet.
func NewPatient(id, name, concern string, priority int) *Patient {
	return &Patient{
		ID:       id,
		Name:     name,
		Concern:  concern,
		Priority: priority,
		DoctorID: DoctorUnassigned,
	}
}

// AssignDoctor binds the patient to a doctor. Assignment reserves intent
// only; it does not mark the doctor unavailable.
func (p *Patient) AssignDoctor(doctorID string) {
	p.DoctorID = doctorID
}

// HasDoctor checks whether a doctor has been bound.
func (p *Patient) HasDoctor() bool {
	return p.DoctorID != "" && p.DoctorID != DoctorUnassigned
}
