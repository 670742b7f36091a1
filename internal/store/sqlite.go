package store

import (
	"database/sql"
	"fmt"

	"github.com/theirongolddev/bizplan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is a Store backed by a private in-memory SQLite database.
// The database disappears when the store is closed.
type SQLite struct {
	db *sql.DB
}

var profileColumns = map[model.ProfileField]string{
	model.FieldName:        "name",
	model.FieldDescription: "description",
	model.FieldMission:     "mission",
	model.FieldVision:      "vision",
}

// OpenSQLite opens an empty in-memory database and applies the schema.
func OpenSQLite() (*SQLite, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening record db: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database, discarding every record.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Profile implements Store.
func (s *SQLite) Profile() (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRow(`SELECT name, description, mission, vision FROM profile WHERE id = 1`).
		Scan(&p.Name, &p.Description, &p.Mission, &p.Vision)
	if err != nil {
		return model.Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	return p, nil
}

// SetProfileField implements Store.
func (s *SQLite) SetProfileField(f model.ProfileField, value string) error {
	col, ok := profileColumns[f]
	if !ok {
		return nil
	}
	// col comes from the fixed map above.
	if _, err := s.db.Exec("UPDATE profile SET "+col+" = ? WHERE id = 1", value); err != nil { //nolint:gosec
		return fmt.Errorf("updating profile %s: %w", col, err)
	}
	return nil
}

// AddProjection implements Store.
func (s *SQLite) AddProjection(p model.Projection) error {
	_, err := s.db.Exec(`INSERT INTO projections (period, revenue, expenses) VALUES (?, ?, ?)`,
		p.Period, p.Revenue, p.Expenses)
	if err != nil {
		return fmt.Errorf("inserting projection: %w", err)
	}
	return nil
}

// Projections implements Store.
func (s *SQLite) Projections() ([]model.Projection, error) {
	rows, err := s.db.Query(`SELECT period, revenue, expenses FROM projections ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying projections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Projection
	for rows.Next() {
		var p model.Projection
		if err := rows.Scan(&p.Period, &p.Revenue, &p.Expenses); err != nil {
			return nil, fmt.Errorf("scanning projection: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// HasProjections implements Store.
func (s *SQLite) HasProjections() (bool, error) {
	return s.exists("projections")
}

// AddCompetitor implements Store.
func (s *SQLite) AddCompetitor(c model.Competitor) error {
	_, err := s.db.Exec(`INSERT INTO competitors (name, strengths, weaknesses) VALUES (?, ?, ?)`,
		c.Name, c.Strengths, c.Weaknesses)
	if err != nil {
		return fmt.Errorf("inserting competitor: %w", err)
	}
	return nil
}

// Competitors implements Store.
func (s *SQLite) Competitors() ([]model.Competitor, error) {
	rows, err := s.db.Query(`SELECT name, strengths, weaknesses FROM competitors ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying competitors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Competitor
	for rows.Next() {
		var c model.Competitor
		if err := rows.Scan(&c.Name, &c.Strengths, &c.Weaknesses); err != nil {
			return nil, fmt.Errorf("scanning competitor: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// HasCompetitors implements Store.
func (s *SQLite) HasCompetitors() (bool, error) {
	return s.exists("competitors")
}

func (s *SQLite) exists(table string) (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT EXISTS (SELECT 1 FROM " + table + ")").Scan(&n); err != nil { //nolint:gosec // fixed table names
		return false, fmt.Errorf("checking %s: %w", table, err)
	}
	return n != 0, nil
}
