package student

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NameSeparator separates last and first name in the stored "Last, First" form.
const NameSeparator = ", "

// Student represents one decoded roster row. Fields are read through accessors
// so a Student cannot change once constructed.
type Student struct {
	name    string
	email   string
	year    string
	majors  []string
	minors  []string
	gecs    []string
	advisor string
}

// New creates a Student. The slices are copied.
func New(name, email, year string, majors, minors, gecs []string, advisor string) *Student {
	return &Student{
		name:    name,
		email:   email,
		year:    year,
		majors:  clone(majors),
		minors:  clone(minors),
		gecs:    clone(gecs),
		advisor: advisor,
	}
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Name returns the full name as stored, normally "Last, First"
func (s *Student) Name() string { return s.name }

// Email returns the email address, empty if the roster had no link
func (s *Student) Email() string { return s.email }

// Year returns the class year exactly as it appeared in the roster
func (s *Student) Year() string { return s.year }

// Majors returns a copy of the declared majors in document order
func (s *Student) Majors() []string { return clone(s.majors) }

// Minors returns a copy of the declared minors in document order
func (s *Student) Minors() []string { return clone(s.minors) }

// GECs returns a copy of the declared general education concentrations
func (s *Student) GECs() []string { return clone(s.gecs) }

// Advisor returns the advisor name
func (s *Student) Advisor() string { return s.advisor }

// LastName returns the part of the name before the separator
func (s *Student) LastName() string {
	last, _ := SplitName(s.name)
	return last
}

// FirstName returns the part of the name after the separator
func (s *Student) FirstName() string {
	_, first := SplitName(s.name)
	return first
}

// SplitName splits a "Last, First" name on its first separator.
// It falls back to a bare comma, and a name without any comma is
// returned whole as the last name.
func SplitName(name string) (last, first string) {
	if last, first, ok := strings.Cut(name, NameSeparator); ok {
		return last, first
	}
	if last, first, ok := strings.Cut(name, ","); ok {
		return last, first
	}
	return name, ""
}

// SortKey returns the text before the first comma of a "Last, First" name
func SortKey(name string) string {
	last, _, _ := strings.Cut(name, ",")
	return last
}

// JoinList joins a multi-valued field the way it is displayed and exported
func JoinList(values []string) string {
	return strings.Join(values, ",")
}

// CSVRecord returns the student as an export row:
// last name, first name, email, year, majors, minors, GECs, advisor.
func (s *Student) CSVRecord() []string {
	return []string{
		s.LastName(),
		s.FirstName(),
		s.email,
		s.year,
		JoinList(s.majors),
		JoinList(s.minors),
		JoinList(s.gecs),
		s.advisor,
	}
}

// String renders the student on one fixed-width line
func (s *Student) String() string {
	return fmt.Sprintf("%-24s  %-18s  %-4s  %-15s  %-10s  %s",
		s.name, s.email, s.year, JoinList(s.majors), JoinList(s.minors), s.advisor)
}

// MarshalJSON encodes the student for the JSON report
func (s *Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Email   string   `json:"email,omitempty"`
		Year    string   `json:"year"`
		Majors  []string `json:"majors"`
		Minors  []string `json:"minors"`
		GECs    []string `json:"gecs"`
		Advisor string   `json:"advisor"`
	}{s.name, s.email, s.year, s.majors, s.minors, s.gecs, s.advisor})
}
