package entity

// ClinicState is the complete durable state of the clinic, handed whole to
// and from the state store. Queue order is the dequeue order at snapshot
// time; history slices are chronological.
type ClinicState struct {
	PatientNames map[string]string
	Doctors      []Doctor
	Rooms        []Room
	Queue        []Patient
	History      map[string][]HistoryRecord
}

// NewClinicState returns an empty state ready to be populated.
func NewClinicState() *ClinicState {
	return &ClinicState{
		PatientNames: make(map[string]string),
		History:      make(map[string][]HistoryRecord),
	}
}
