package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/dcs-roster/internal/student"
)

func TestWriteWorkbook(t *testing.T) {
	exp, dir := setupExporter(t)
	g := sampleGrouping()

	path, err := exp.WriteWorkbook("roster.xlsx", g)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "roster.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"2024", "2025", "2026"}, f.GetSheetList())

	header, err := f.GetRows("2025")
	require.NoError(t, err)
	require.Len(t, header, 3)
	assert.Equal(t, Header, header[0])
}

func TestWriteWorkbook_RowsMatchCSV(t *testing.T) {
	exp, _ := setupExporter(t)
	g := sampleGrouping()

	path, err := exp.WriteWorkbook("roster.xlsx", g)
	require.NoError(t, err)

	sheets, err := ReadWorkbook(path)
	require.NoError(t, err)

	for _, year := range g.ByYear.SortedKeys() {
		rows := sheets[year]
		students := g.ByYear.SortedByName(year)
		require.Len(t, rows, len(students), "sheet %s", year)

		for i, s := range students {
			assert.Equal(t, s.Name(), rows[i][0]+student.NameSeparator+rows[i][1])
			assert.Equal(t, s.Advisor(), rows[i][len(rows[i])-1])
		}
	}
}

func TestWriteWorkbook_Empty(t *testing.T) {
	exp, _ := setupExporter(t)

	path, err := exp.WriteWorkbook("empty.xlsx", student.Group(nil))
	require.NoError(t, err)

	sheets, err := ReadWorkbook(path)
	require.NoError(t, err)
	assert.Len(t, sheets, 1)
	assert.Empty(t, sheets[defaultSheet])
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{"2025", "2025"},
		{"", "unknown"},
		{"2025/26", "2025_26"},
		{"'27'", "27"},
		{strings.Repeat("9", 40), strings.Repeat("9", 31)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sheetName(tt.year), "year %q", tt.year)
	}
}

func TestUniqueSheetName(t *testing.T) {
	used := make(map[string]bool)

	assert.Equal(t, "2025", uniqueSheetName("2025", used))
	assert.Equal(t, "2025 (2)", uniqueSheetName("2025", used))
	assert.Equal(t, "2025 (3)", uniqueSheetName("2025", used))
}
