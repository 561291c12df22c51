package repository

import (
	"testing"

	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

func newPatient(id string, priority int) *entity.Patient {
	return entity.NewPatient(id, "Patient "+id, "checkup", priority)
}

func dequeueIDs(t *testing.T, q interface {
	Dequeue() (*entity.Patient, bool)
	Len() int
}) []string {
	t.Helper()
	var ids []string
	for {
		p, ok := q.Dequeue()
		if !ok {
			break
		}
		ids = append(ids, p.ID)
	}
	return ids
}

// ---------- Ordering ----------

func TestWaitingQueue_PriorityOrder(t *testing.T) {
	q := NewWaitingQueue()
	q.Enqueue(newPatient("P1", 3))
	q.Enqueue(newPatient("P2", 1))
	q.Enqueue(newPatient("P3", 5))
	q.Enqueue(newPatient("P4", 2))

	got := dequeueIDs(t, q)
	want := []string{"P2", "P4", "P1", "P3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dequeue order %v, want %v", got, want)
		}
	}
}

func TestWaitingQueue_FIFOOnTie(t *testing.T) {
	q := NewWaitingQueue()
	q.Enqueue(newPatient("first", 2))
	q.Enqueue(newPatient("second", 2))
	q.Enqueue(newPatient("third", 2))

	got := dequeueIDs(t, q)
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal-priority dequeue order %v, want %v", got, want)
		}
	}
}

func TestWaitingQueue_RequeueBehindEquals(t *testing.T) {
	q := NewWaitingQueue()
	q.Enqueue(newPatient("ana", 2))
	q.Enqueue(newPatient("bea", 2))

	// Ana is dequeued and returned to the queue; Bea goes first now.
	ana, ok := q.Dequeue()
	if !ok || ana.ID != "ana" {
		t.Fatalf("expected ana first, got %+v", ana)
	}
	q.Enqueue(ana)

	got := dequeueIDs(t, q)
	want := []string{"bea", "ana"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("requeue order %v, want %v", got, want)
		}
	}
}

// ---------- Contract ----------

func TestWaitingQueue_EmptyDequeue(t *testing.T) {
	q := NewWaitingQueue()
	if p, ok := q.Dequeue(); ok {
		t.Fatalf("expected empty dequeue to fail, got %+v", p)
	}
	if q.Len() != 0 {
		t.Errorf("expected length 0, got %d", q.Len())
	}
}

func TestWaitingQueue_Len(t *testing.T) {
	q := NewWaitingQueue()
	q.Enqueue(newPatient("P1", 1))
	q.Enqueue(newPatient("P2", 4))
	if q.Len() != 2 {
		t.Fatalf("expected length 2, got %d", q.Len())
	}
	q.Dequeue()
	if q.Len() != 1 {
		t.Fatalf("expected length 1 after dequeue, got %d", q.Len())
	}
}

func TestWaitingQueue_SnapshotOrderAndOwnership(t *testing.T) {
	q := NewWaitingQueue()
	q.Enqueue(newPatient("low", 4))
	q.Enqueue(newPatient("high", 1))
	q.Enqueue(newPatient("mid", 2))

	snap := q.Snapshot()
	want := []string{"high", "mid", "low"}
	if len(snap) != len(want) {
		t.Fatalf("snapshot size %d, want %d", len(snap), len(want))
	}
	for i := range want {
		if snap[i].ID != want[i] {
			t.Fatalf("snapshot order %v, want %v", snap, want)
		}
	}

	// Snapshot must not drain or alias the queue.
	snap[0].Priority = 5
	if q.Len() != 3 {
		t.Fatalf("snapshot drained the queue: len=%d", q.Len())
	}
	p, _ := q.Dequeue()
	if p.ID != "high" || p.Priority != 1 {
		t.Errorf("snapshot mutation leaked into queue: %+v", p)
	}
}
