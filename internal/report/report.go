// Package report serializes a session's records into the plain-text
// business plan artifact.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theirongolddev/bizplan/internal/cli"
	"github.com/theirongolddev/bizplan/internal/model"
	"github.com/theirongolddev/bizplan/internal/store"
)

// ContentType is the MIME type of every exported artifact.
const ContentType = "text/plain"

// FilenameSuffix is appended to the business name to form the file name.
const FilenameSuffix = "_business_plan.txt"

// Artifact is an exported business plan ready to be written or served.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Build renders the business plan text. The overview section is always
// present; the two table sections appear only when they have rows.
func Build(p model.Profile, rows []model.Projection, comps []model.Competitor) string {
	var b strings.Builder

	b.WriteString("# Business Plan\n\n")
	b.WriteString("## Company Overview\n")
	for _, f := range model.ProfileFields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label(), p.Get(f))
	}

	if len(rows) > 0 {
		b.WriteString("\n## Financial Projections\n")
		b.WriteString(projectionTable(rows))
		b.WriteString("\n")
	}

	if len(comps) > 0 {
		b.WriteString("\n## Market Analysis\n")
		b.WriteString(competitorTable(comps))
		b.WriteString("\n")
	}

	return b.String()
}

// FromStore reads every table from s and builds the artifact.
// The business name is used as-is in the file name.
func FromStore(s store.Store) (Artifact, error) {
	p, err := s.Profile()
	if err != nil {
		return Artifact{}, fmt.Errorf("reading profile: %w", err)
	}

	var rows []model.Projection
	hasRows, err := s.HasProjections()
	if err != nil {
		return Artifact{}, fmt.Errorf("checking projections: %w", err)
	}
	if hasRows {
		if rows, err = s.Projections(); err != nil {
			return Artifact{}, fmt.Errorf("reading projections: %w", err)
		}
	}

	var comps []model.Competitor
	hasComps, err := s.HasCompetitors()
	if err != nil {
		return Artifact{}, fmt.Errorf("checking competitors: %w", err)
	}
	if hasComps {
		if comps, err = s.Competitors(); err != nil {
			return Artifact{}, fmt.Errorf("reading competitors: %w", err)
		}
	}

	return Artifact{
		Filename:    p.Name + FilenameSuffix,
		ContentType: ContentType,
		Data:        []byte(Build(p, rows, comps)),
	}, nil
}

// WriteTo writes the artifact into dir and returns the full path.
func (a Artifact) WriteTo(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil { //nolint:gosec // exported plan is meant to be shared
		return "", fmt.Errorf("writing %s: %w", a.Filename, err)
	}
	return path, nil
}

func projectionTable(rows []model.Projection) string {
	t := cli.PlainTable("", "Month", "Revenue", "Expenses")
	for i, r := range rows {
		t.Row(strconv.Itoa(i), r.Period, cli.FormatAmount(r.Revenue), cli.FormatAmount(r.Expenses))
	}
	return t.String()
}

func competitorTable(comps []model.Competitor) string {
	t := cli.PlainTable("", "Competitor", "Strengths", "Weaknesses")
	for i, c := range comps {
		t.Row(strconv.Itoa(i), c.Name, c.Strengths, c.Weaknesses)
	}
	return t.String()
}
