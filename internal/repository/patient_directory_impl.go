package repository

import (
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

type patientDirectory struct {
	names map[string]string
}

func NewPatientDirectory() domainRepo.PatientDirectory {
	return &patientDirectory{
		names: make(map[string]string),
	}
}

func (d *patientDirectory) Put(id, name string) {
	d.names[id] = name
}

func (d *patientDirectory) Name(id string) (string, bool) {
	name, ok := d.names[id]
	return name, ok
}

func (d *patientDirectory) Has(id string) bool {
	_, ok := d.names[id]
	return ok
}

func (d *patientDirectory) All() map[string]string {
	copied := make(map[string]string, len(d.names))
	for id, name := range d.names {
		copied[id] = name
	}
	return copied
}

func (d *patientDirectory) Len() int {
	return len(d.names)
}
