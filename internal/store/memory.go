package store

import "github.com/theirongolddev/bizplan/internal/model"

// Memory is the default Store: plain slices owned by a single render loop.
// It is not safe for concurrent use.
type Memory struct {
	profile     model.Profile
	projections []model.Projection
	competitors []model.Competitor
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Profile implements Store.
func (m *Memory) Profile() (model.Profile, error) {
	return m.profile, nil
}

// SetProfileField implements Store.
func (m *Memory) SetProfileField(f model.ProfileField, value string) error {
	m.profile.Set(f, value)
	return nil
}

// AddProjection implements Store.
func (m *Memory) AddProjection(p model.Projection) error {
	m.projections = append(m.projections, p)
	return nil
}

// Projections returns a copy of the financial table.
func (m *Memory) Projections() ([]model.Projection, error) {
	out := make([]model.Projection, len(m.projections))
	copy(out, m.projections)
	return out, nil
}

// HasProjections implements Store.
func (m *Memory) HasProjections() (bool, error) {
	return len(m.projections) > 0, nil
}

// AddCompetitor implements Store.
func (m *Memory) AddCompetitor(c model.Competitor) error {
	m.competitors = append(m.competitors, c)
	return nil
}

// Competitors returns a copy of the competitor table.
func (m *Memory) Competitors() ([]model.Competitor, error) {
	out := make([]model.Competitor, len(m.competitors))
	copy(out, m.competitors)
	return out, nil
}

// HasCompetitors implements Store.
func (m *Memory) HasCompetitors() (bool, error) {
	return len(m.competitors) > 0, nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }
