package roster

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dcs-roster/internal/logger"
	"github.com/pfrederiksen/dcs-roster/internal/student"
)

// DefaultTableID is the id attribute of the student table on the roster page
const DefaultTableID = "dcs-roster"

// Parser locates the student table in a roster page and decodes its rows
type Parser struct {
	tableID string
	layout  Layout
}

// New creates a Parser for the table with the given id using DefaultLayout.
// An empty id selects DefaultTableID.
func New(tableID string) *Parser {
	if tableID == "" {
		tableID = DefaultTableID
	}
	return &Parser{
		tableID: tableID,
		layout:  DefaultLayout,
	}
}

// WithLayout returns a copy of the parser that decodes rows with layout
func (p *Parser) WithLayout(layout Layout) *Parser {
	cp := *p
	cp.layout = layout
	return &cp
}

// TableID returns the id of the table the parser looks for
func (p *Parser) TableID() string {
	return p.tableID
}

// Result holds the students decoded from one roster page
type Result struct {
	Students []*student.Student
	Rows     int     // rows found under the table body
	Skipped  int     // rows dropped as undecodable
	Issues   []Issue // every row or field that did not match the layout
}

// ParseFile reads and parses the roster page at path
func (p *Parser) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	result, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return result, nil
}

// Parse extracts students from roster HTML
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	start := time.Now()
	defer func() {
		logger.RecordTiming("parse.document", time.Since(start))
	}()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows, err := p.Rows(doc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Students: make([]*student.Student, 0, rows.Length()),
		Rows:     rows.Length(),
	}

	rows.Each(func(i int, row *goquery.Selection) {
		rowNum := i + 1

		s, issues, err := DecodeRow(row, p.layout, rowNum)
		if err != nil {
			result.Skipped++
			result.Issues = append(result.Issues, Issue{Row: rowNum, Reason: err.Error()})
			logger.IncrCounter("rows.skipped")
			logger.Warn("Skipping roster row", logger.Fields{
				"table": p.tableID,
				"row":   rowNum,
				"error": err.Error(),
			})
			return
		}

		for _, issue := range issues {
			logger.IncrCounter("decode.issues")
			logger.Warn("Roster row decoded with empty value", logger.Fields{
				"table":  p.tableID,
				"row":    issue.Row,
				"field":  issue.Field,
				"reason": issue.Reason,
			})
		}
		result.Issues = append(result.Issues, issues...)
		result.Students = append(result.Students, s)
		logger.IncrCounter("rows.decoded")
	})

	logger.Debug("Parsed roster table", logger.Fields{
		"table":    p.tableID,
		"rows":     result.Rows,
		"students": len(result.Students),
		"skipped":  result.Skipped,
	})

	return result, nil
}

// Rows finds the student table and returns its body rows in document order
func (p *Parser) Rows(doc *goquery.Document) (*goquery.Selection, error) {
	table := doc.Find(fmt.Sprintf("table[id=%q]", p.tableID)).First()
	if table.Length() == 0 {
		return nil, &StructureError{TableID: p.tableID, Err: ErrTableNotFound}
	}

	body := table.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		return nil, &StructureError{TableID: p.tableID, Err: ErrBodyNotFound}
	}

	rows := body.ChildrenFiltered("tr")
	if rows.Length() == 0 {
		return nil, &StructureError{TableID: p.tableID, Err: ErrNoRows}
	}

	return rows, nil
}
