package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// WaitingQueue is the priority-ordered multiset of checked-in patients.
// Lower priority values dequeue first; equal priorities dequeue FIFO.
// Re-enqueueing a patient places them behind equal-priority peers.
type WaitingQueue interface {
	Enqueue(patient *entity.Patient)
	Dequeue() (*entity.Patient, bool)
	Len() int
	// Snapshot returns owned copies of the queued patients in dequeue order.
	Snapshot() []entity.Patient
}
