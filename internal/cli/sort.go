package cli

import (
	"github.com/pfrederiksen/dcs-roster/internal/student"
)

// Tally is one row of a summary table
type Tally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// studentsByYear lists every student, years ascending and names ascending within a year
func studentsByYear(g *student.Grouping) []*student.Student {
	out := make([]*student.Student, 0, g.Total())
	for _, year := range g.ByYear.SortedKeys() {
		out = append(out, g.ByYear.SortedByName(year)...)
	}
	return out
}

// yearSummary counts students per year, years ascending
func yearSummary(g *student.Grouping) []Tally {
	years := g.ByYear.SortedKeys()
	out := make([]Tally, 0, len(years))
	for _, year := range years {
		out = append(out, Tally{Name: year, Count: g.ByYear.Count(year)})
	}
	return out
}

// advisorSummary counts students per advisor, ordered by advisor last name
func advisorSummary(g *student.Grouping) []Tally {
	advisors := g.ByAdvisor.Keys()
	student.SortByLastName(advisors)

	out := make([]Tally, 0, len(advisors))
	for _, advisor := range advisors {
		out = append(out, Tally{Name: advisor, Count: g.ByAdvisor.Count(advisor)})
	}
	return out
}
