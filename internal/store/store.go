// Package store holds the session record store: one business profile and
// two append-only tables. Nothing in this package outlives the process.
package store

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/bizplan/internal/model"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is the record store shared by every page of a session.
// Rows are returned in insertion order. There is no update or delete.
type Store interface {
	Profile() (model.Profile, error)
	SetProfileField(f model.ProfileField, value string) error

	AddProjection(p model.Projection) error
	Projections() ([]model.Projection, error)
	HasProjections() (bool, error)

	AddCompetitor(c model.Competitor) error
	Competitors() ([]model.Competitor, error)
	HasCompetitors() (bool, error)

	Close() error
}

// Open returns an empty store for the named backend.
func Open(backend string) (Store, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendMemory, BackendSQLite}
}
