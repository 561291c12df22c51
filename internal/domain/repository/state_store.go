package repository

import (
	"github.com/smthh4/cc13.1-finals-project/internal/domain/entity"
)

// StateStore is the persistence boundary. Load reconstructs the full
// clinic state (a missing backing file yields an empty state, not an
// error); Save rewrites the durable representation from the given state.
type StateStore interface {
	Load() (*entity.ClinicState, error)
	Save(state *entity.ClinicState) error
}
