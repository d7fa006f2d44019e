package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindCandidates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.html", "a.html", "C.HTML", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "dir.html"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := findCandidates(dir, ".html")
	if err != nil {
		t.Fatalf("findCandidates() error: %v", err)
	}

	want := "C.HTML|a.html|b.html"
	if strings.Join(got, "|") != want {
		t.Errorf("findCandidates() = %v, want %s", got, want)
	}
}

func TestFindCandidates_MissingDir(t *testing.T) {
	_, err := findCandidates(filepath.Join(t.TempDir(), "nope"), ".html")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestChooseFile(t *testing.T) {
	candidates := []string{"a.html", "b.html", "c.html"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"first", "1\n", "a.html"},
		{"second", "2\n", "b.html"},
		{"last", "3\n", "c.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := chooseFile(strings.NewReader(tt.input), &out, candidates)
			if err != nil {
				t.Fatalf("chooseFile() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("chooseFile() = %q, want %q", got, tt.want)
			}
			for _, name := range candidates {
				if !strings.Contains(out.String(), name) {
					t.Errorf("expected %s to be offered, got %q", name, out.String())
				}
			}
		})
	}
}

func TestChooseFile_NoCandidates(t *testing.T) {
	_, err := chooseFile(strings.NewReader("\n"), &bytes.Buffer{}, nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}
