package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pfrederiksen/dcs-roster/internal/logger"
	"github.com/pfrederiksen/dcs-roster/internal/student"
)

const (
	CSVExt    = ".csv"
	DirPerm   = 0755
	FilePerm  = 0644
	blankYear = "unknown"
)

// Header is the column order of every exported row
var Header = []string{"Last Name", "First Name", "Email", "Year", "Majors", "Minors", "GECs", "Advisor"}

// Row is one exported student
type Row struct {
	LastName  string `csv:"Last Name"`
	FirstName string `csv:"First Name"`
	Email     string `csv:"Email"`
	Year      string `csv:"Year"`
	Majors    string `csv:"Majors"`
	Minors    string `csv:"Minors"`
	GECs      string `csv:"GECs"`
	Advisor   string `csv:"Advisor"`
}

// NewRow projects a student onto the export columns
func NewRow(s *student.Student) Row {
	rec := s.CSVRecord()
	return Row{
		LastName:  rec[0],
		FirstName: rec[1],
		Email:     rec[2],
		Year:      rec[3],
		Majors:    rec[4],
		Minors:    rec[5],
		GECs:      rec[6],
		Advisor:   rec[7],
	}
}

// Values returns the row in Header order
func (r Row) Values() []string {
	return []string{r.LastName, r.FirstName, r.Email, r.Year, r.Majors, r.Minors, r.GECs, r.Advisor}
}

// Exporter writes per-year files into one directory
type Exporter struct {
	dir    string
	prefix string
}

// New creates an Exporter writing into dir, creating it if needed.
// A leading ~/ in dir is expanded to the home directory.
func New(dir, prefix string) (*Exporter, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	return &Exporter{
		dir:    dir,
		prefix: prefix,
	}, nil
}

// Dir returns the output directory
func (e *Exporter) Dir() string {
	return e.dir
}

// YearPath returns the CSV path for a class year
func (e *Exporter) YearPath(year string) string {
	return filepath.Join(e.dir, e.prefix+safeName(year)+CSVExt)
}

// safeName keeps a year usable as a single path element
func safeName(year string) string {
	if year == "" {
		return blankYear
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, year)
}

// uniqueYearPath returns the CSV path for year, suffixed with "-n" when an
// earlier year already mapped to the same file name. Names are compared
// case-insensitively so distinct years stay distinct on every filesystem.
func (e *Exporter) uniqueYearPath(year string, used map[string]bool) string {
	base := e.prefix + safeName(year)
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s-%d", base, n)
	}
	used[strings.ToLower(name)] = true
	return filepath.Join(e.dir, name+CSVExt)
}

// WriteYear writes the students of one class year, ordered as given, to its CSV file
func (e *Exporter) WriteYear(year string, students []*student.Student) (string, error) {
	return e.writeFile(e.YearPath(year), year, students)
}

func (e *Exporter) writeFile(path, year string, students []*student.Student) (string, error) {
	rows := make([]Row, 0, len(students))
	for _, s := range students {
		rows = append(rows, NewRow(s))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := gocsv.Marshal(&rows, f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	logger.IncrCounter("files.written")
	logger.Debug("Wrote year file", logger.Fields{
		"year":     year,
		"path":     path,
		"students": len(rows),
	})

	return path, nil
}

// WriteYears writes one CSV file per class year in ascending year order,
// students sorted by name. Years whose file names would clash get a numeric
// suffix, so no year overwrites another. It stops at the first failure and
// returns the files written so far.
func (e *Exporter) WriteYears(g *student.Grouping) ([]string, error) {
	years := g.ByYear.SortedKeys()
	written := make([]string, 0, len(years))
	used := make(map[string]bool, len(years))

	for _, year := range years {
		path, err := e.writeFile(e.uniqueYearPath(year, used), year, g.ByYear.SortedByName(year))
		if err != nil {
			logger.Error("Year export aborted", logger.Fields{
				"year":    year,
				"written": len(written),
			}, err)
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// ReadYear reads an exported CSV file back into rows
func ReadYear(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}
