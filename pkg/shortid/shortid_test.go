package shortid

import (
	"regexp"
	"testing"
)

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^P[0-9a-f]{8}$`)

	id, err := Generate(PatientPrefix, func(string) bool { return false })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pattern.MatchString(id) {
		t.Errorf("id %q does not match prefix + 8 hex digits", id)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id, err := Generate(DoctorPrefix, func(candidate string) bool { return seen[candidate] })
		if err != nil {
			t.Fatalf("unexpected error on draw %d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q on draw %d", id, i)
		}
		seen[id] = true
	}
}

func TestGenerate_Exhausted(t *testing.T) {
	calls := 0
	_, err := Generate(RoomPrefix, func(string) bool {
		calls++
		return true
	})
	if err != ErrExhausted {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if calls != 10 {
		t.Errorf("expected 10 attempts, got %d", calls)
	}
}
