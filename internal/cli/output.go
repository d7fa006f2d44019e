package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pfrederiksen/dcs-roster/internal/student"
)

// OutputFormat specifies the output format of table mode
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Report holds the three table-mode views
type Report struct {
	Students []*student.Student `json:"students"`
	Years    []Tally            `json:"years"`
	Advisors []Tally            `json:"advisors"`
	Total    int                `json:"total"`
}

// NewReport builds the views from a grouping without modifying it
func NewReport(g *student.Grouping) *Report {
	return &Report{
		Students: studentsByYear(g),
		Years:    yearSummary(g),
		Advisors: advisorSummary(g),
		Total:    g.Total(),
	}
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// writeText outputs the report as three tables
func writeText(w io.Writer, report *Report) error {
	if report.Total == 0 {
		_, err := fmt.Fprintln(w, "No students found.")
		return err
	}

	students := newTable("Name", "Email", "Year", "Majors", "Minors", "Advisor")
	for _, s := range report.Students {
		students.Row(s.Name(), s.Email(), s.Year(), student.JoinList(s.Majors()), student.JoinList(s.Minors()), s.Advisor())
	}

	years := newTable("Year", "Students")
	for _, y := range report.Years {
		years.Row(y.Name, strconv.Itoa(y.Count))
	}

	advisors := newTable("Advisor", "Students")
	for _, a := range report.Advisors {
		advisors.Row(a.Name, strconv.Itoa(a.Count))
	}

	sections := []struct {
		title string
		tbl   *table.Table
	}{
		{"All Students", students},
		{"Students per Year", years},
		{"Students per Advisor", advisors},
	}

	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, titleStyle.Render(section.title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, section.tbl.Render()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d students across %d years\n", report.Total, len(report.Years))
	return err
}
