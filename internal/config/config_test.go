package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dcs-roster", cfg.TableID)
	assert.Equal(t, ".html", cfg.InputExt)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "dcs_students_", cfg.FilePrefix)
	assert.Equal(t, "dcs_students.xlsx", cfg.WorkbookName)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ROSTER_TABLE_ID", "minors")
	t.Setenv("ROSTER_OUTPUT_DIR", "/tmp/out")
	t.Setenv("ROSTER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "minors", cfg.TableID)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ".html", cfg.InputExt)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("ROSTER_TABLE_ID", "from-env")
	t.Setenv("ROSTER_FILE_PREFIX", "env_")

	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "table_id: from-file\nworkbook_name: roster.xlsx\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.TableID, "file overrides env")
	assert.Equal(t, "env_", cfg.FilePrefix, "env kept where file is silent")
	assert.Equal(t, "roster.xlsx", cfg.WorkbookName)
}

func TestLoad_FileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tabel_id: typo\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		TableID:      "dcs-roster",
		InputExt:     ".html",
		OutputDir:    ".",
		FilePrefix:   "dcs_students_",
		WorkbookName: "dcs_students.xlsx",
		LogLevel:     "warn",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty prefix allowed", func(c *Config) { c.FilePrefix = "" }, ""},
		{"missing table id", func(c *Config) { c.TableID = "" }, "TableID"},
		{"extension without dot", func(c *Config) { c.InputExt = "html" }, "InputExt"},
		{"workbook not xlsx", func(c *Config) { c.WorkbookName = "out.csv" }, "WorkbookName"},
		{"prefix with slash", func(c *Config) { c.FilePrefix = "a/b" }, "FilePrefix"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMerge(t *testing.T) {
	cfg := Config{TableID: "a", OutputDir: "out", LogLevel: "warn"}
	cfg.Merge(Config{TableID: "b"})

	assert.Equal(t, "b", cfg.TableID)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}
