package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrNoCandidates is returned when no roster file can be offered
var ErrNoCandidates = errors.New("no roster files found")

// findCandidates lists regular files in dir with extension ext, sorted by name
func findCandidates(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// chooseFile offers candidates as a numbered list on out and reads the
// choice from in. The first candidate is preselected.
func chooseFile(in io.Reader, out io.Writer, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	choice := candidates[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a roster file").
				Options(huh.NewOptions(candidates...)...).
				Value(&choice),
		),
	).
		WithAccessible(true).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("choosing roster file: %w", err)
	}
	return choice, nil
}
