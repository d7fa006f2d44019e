package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/dcs-roster/internal/logger"
	"github.com/pfrederiksen/dcs-roster/internal/student"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteWorkbook writes one xlsx workbook with a sheet per class year,
// years ascending and students sorted by name within each sheet.
func (e *Exporter) WriteWorkbook(name string, g *student.Grouping) (string, error) {
	path := filepath.Join(e.dir, name)

	f := excelize.NewFile()
	defer f.Close()

	years := g.ByYear.SortedKeys()
	if len(years) == 0 {
		if err := writeSheet(f, defaultSheet, nil); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}

	used := make(map[string]bool, len(years))
	for i, year := range years {
		sheet := uniqueSheetName(sheetName(year), used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return "", fmt.Errorf("writing %s: sheet %q: %w", path, sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("writing %s: sheet %q: %w", path, sheet, err)
		}

		if err := writeSheet(f, sheet, g.ByYear.SortedByName(year)); err != nil {
			return "", fmt.Errorf("writing %s: sheet %q: %w", path, sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	logger.IncrCounter("files.written")
	logger.Debug("Wrote workbook", logger.Fields{
		"path":   path,
		"sheets": len(years),
	})

	return path, nil
}

func writeSheet(f *excelize.File, sheet string, students []*student.Student) error {
	header := toCells(Header)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range students {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := toCells(NewRow(s).Values())
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// sheetName turns a year into a valid worksheet name
func sheetName(year string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, year)

	name = strings.Trim(name, "'")
	if name == "" {
		return blankYear
	}
	if len([]rune(name)) > excelize.MaxSheetNameLength {
		name = string([]rune(name)[:excelize.MaxSheetNameLength])
	}
	return name
}

// uniqueSheetName suffixes name when two years map to the same sheet name.
// Excel compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(name)
		if len(runes)+len(suffix) > excelize.MaxSheetNameLength {
			runes = runes[:excelize.MaxSheetNameLength-len(suffix)]
		}
		candidate = string(runes) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// ReadWorkbook reads every sheet of an exported workbook, keyed by sheet name,
// with the header row removed
func ReadWorkbook(path string) (map[string][][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	sheets := make(map[string][][]string)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading %s: sheet %q: %w", path, sheet, err)
		}
		if len(rows) > 0 {
			rows = rows[1:]
		}
		sheets[sheet] = rows
	}
	return sheets, nil
}
