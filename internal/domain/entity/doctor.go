package entity

// Doctor represents a registered doctor and their availability.
// InClinic is false exactly while the doctor is bound to an in-progress
// treatment or has been toggled off duty.
type Doctor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	InClinic bool   `json:"in_clinic"`
}

// NewDoctor registers a doctor as available.
func NewDoctor(id, name string) *Doctor {
	return &Doctor{ID: id, Name: name, InClinic: true}
}

// IsAvailable checks whether the doctor can accept a patient.
func (d *Doctor) IsAvailable() bool {
	return d.InClinic
}
