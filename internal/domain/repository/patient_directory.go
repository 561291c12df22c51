package repository

// PatientDirectory maps patient identifiers to display names. Entries
// outlive the waiting queue so history stays reachable after treatment.
type PatientDirectory interface {
	Put(id, name string)
	Name(id string) (string, bool)
	Has(id string) bool
	All() map[string]string
	Len() int
}
