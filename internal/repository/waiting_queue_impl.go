package repository

import (
	"container/heap"
	"sort"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
	domainRepo "github.com/smthh4/cc13.1-finals-project/internal/domain/repository"
)

// queueItem pairs a patient with a monotonic sequence number. The heap
// orders by (priority, seq), which yields FIFO among equal priorities. A
// re-enqueued patient gets a fresh sequence number and so rejoins behind
// equal-priority peers.
type queueItem struct {
	patient *entity.Patient
	seq     uint64
}

type patientHeap []queueItem

func (h patientHeap) Len() int { return len(h) }

func (h patientHeap) Less(i, j int) bool {
	if h[i].patient.Priority != h[j].patient.Priority {
		return h[i].patient.Priority < h[j].patient.Priority
	}
	return h[i].seq < h[j].seq
}

func (h patientHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *patientHeap) Push(x any) {
	*h = append(*h, x.(queueItem))
}

func (h *patientHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = queueItem{}
	*h = old[:n-1]
	return item
}

type waitingQueue struct {
	items   patientHeap
	nextSeq uint64
}

func NewWaitingQueue() domainRepo.WaitingQueue {
	return &waitingQueue{}
}

func (q *waitingQueue) Enqueue(patient *entity.Patient) {
	stored := *patient
	heap.Push(&q.items, queueItem{patient: &stored, seq: q.nextSeq})
	q.nextSeq++
}

func (q *waitingQueue) Dequeue() (*entity.Patient, bool) {
	if q.items.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&q.items).(queueItem)
	return item.patient, true
}

func (q *waitingQueue) Len() int {
	return q.items.Len()
}

// Snapshot copies the queued patients in dequeue order without draining
// the heap. Persisting this order keeps FIFO ties stable across reloads.
func (q *waitingQueue) Snapshot() []entity.Patient {
	items := make([]queueItem, len(q.items))
	copy(items, q.items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].patient.Priority != items[j].patient.Priority {
			return items[i].patient.Priority < items[j].patient.Priority
		}
		return items[i].seq < items[j].seq
	})

	patients := make([]entity.Patient, len(items))
	for i, item := range items {
		patients[i] = *item.patient
	}
	return patients
}
