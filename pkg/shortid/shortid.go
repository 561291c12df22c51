// Package shortid generates the short prefixed identifiers used for
// patients, doctors and rooms: a one-letter category prefix followed by
// eight lowercase hex digits drawn from a 32-bit space.
package shortid

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Category prefixes.
const (
	PatientPrefix = "P"
	DoctorPrefix  = "D"
	RoomPrefix    = "R"
)

const maxAttempts = 10

// ErrExhausted is returned when every attempt collided with an existing
// identifier. It fails the calling operation, never the process.
var ErrExhausted = errors.New("shortid: exhausted attempts to generate a unique id")

// Generate draws identifiers until taken reports the candidate as unused,
// up to a fixed attempt bound.
func Generate(prefix string, taken func(id string) bool) (string, error) {
	buf := make([]byte, 4)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("shortid: read random bytes: %w", err)
		}
		id := fmt.Sprintf("%s%08x", prefix, buf)
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrExhausted
}
