package roster

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dcs-roster/internal/student"
)

// Layout maps each student field to its zero-based cell position in a row
type Layout struct {
	Name    int
	Year    int
	Email   int
	Majors  int
	Minors  int
	GECs    int
	Advisor int
}

// DefaultLayout is the column layout of the roster page
var DefaultLayout = Layout{
	Name:    1,
	Year:    3,
	Email:   5,
	Majors:  6,
	Minors:  7,
	GECs:    8,
	Advisor: 9,
}

// MinCells returns the number of cells a row needs for this layout
func (l Layout) MinCells() int {
	highest := 0
	for _, idx := range []int{l.Name, l.Year, l.Email, l.Majors, l.Minors, l.GECs, l.Advisor} {
		if idx > highest {
			highest = idx
		}
	}
	return highest + 1
}

// visibleChild matches nested elements that are not screen-reader-only copies
const visibleChild = ":not(.sr-only):not(.visually-hidden):not([hidden])"

// DecodeRow decodes one table row into a Student.
// rowNum is the 1-based row position used in issues. A row with too few
// cells returns ErrShortRow; any other mismatch is reported as an Issue
// and the affected field is left empty.
func DecodeRow(row *goquery.Selection, layout Layout, rowNum int) (*student.Student, []Issue, error) {
	cells := row.ChildrenFiltered("td, th")
	if cells.Length() < layout.MinCells() {
		return nil, nil, fmt.Errorf("row %d: %w (have %d, need %d)", rowNum, ErrShortRow, cells.Length(), layout.MinCells())
	}

	var issues []Issue

	name := cellText(cells.Eq(layout.Name))
	if !strings.Contains(name, ",") {
		issues = append(issues, Issue{Row: rowNum, Field: "name", Reason: fmt.Sprintf("%q is not in \"Last, First\" form", name)})
	}

	year := cellText(cells.Eq(layout.Year))
	email := decodeEmail(cells.Eq(layout.Email))

	majors, majorIssues := decodeAbbrs(cells.Eq(layout.Majors), rowNum, "majors")
	minors, minorIssues := decodeAbbrs(cells.Eq(layout.Minors), rowNum, "minors")
	gecs, gecIssues := decodeAbbrs(cells.Eq(layout.GECs), rowNum, "gecs")
	issues = append(issues, majorIssues...)
	issues = append(issues, minorIssues...)
	issues = append(issues, gecIssues...)

	advisor, ok := decodeAdvisor(cells.Eq(layout.Advisor))
	if !ok {
		issues = append(issues, Issue{Row: rowNum, Field: "advisor", Reason: "no nested element holding the advisor name"})
	}

	return student.New(name, email, year, majors, minors, gecs, advisor), issues, nil
}

// cellText returns the text of a cell without the surrounding markup whitespace
func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}

// decodeEmail returns the text of the first link in the cell, or "" if there is none
func decodeEmail(cell *goquery.Selection) string {
	link := cell.Find("a").First()
	if link.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(link.Text())
}

// decodeAbbrs returns the title attribute of every abbr in the cell, in document order
func decodeAbbrs(cell *goquery.Selection, rowNum int, field string) ([]string, []Issue) {
	values := make([]string, 0)
	var issues []Issue

	cell.Find("abbr").Each(func(i int, abbr *goquery.Selection) {
		title, exists := abbr.Attr("title")
		if !exists {
			issues = append(issues, Issue{
				Row:    rowNum,
				Field:  field,
				Reason: fmt.Sprintf("abbr %q has no title", strings.TrimSpace(abbr.Text())),
			})
		}
		values = append(values, strings.TrimSpace(title))
	})

	return values, issues
}

// decodeAdvisor returns the text of the first visible nested element of the cell.
// The cell's own text also carries a hidden duplicate of the name and is never used.
func decodeAdvisor(cell *goquery.Selection) (string, bool) {
	nested := cell.ChildrenFiltered(visibleChild).First()
	if nested.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(nested.Text()), true
}
