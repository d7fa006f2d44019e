package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pfrederiksen/dcs-roster/internal/config"
	"github.com/pfrederiksen/dcs-roster/internal/export"
	"github.com/pfrederiksen/dcs-roster/internal/logger"
	"github.com/pfrederiksen/dcs-roster/internal/roster"
	"github.com/pfrederiksen/dcs-roster/internal/student"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Mode selects what is done with the grouped roster
type Mode string

const (
	ModeTable Mode = "table"
	ModeCSV   Mode = "csv"
	ModeXLSX  Mode = "xlsx"
)

type options struct {
	mode       string
	format     string
	tableID    string
	outputDir  string
	configPath string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dcs-roster [file]",
		Short: "Summarize a DCS roster page by class year and advisor",
		Long: `Reads a roster HTML page, decodes the student table and groups the
students by class year and by advisor.

  --mode table   print all students, students per year and students per advisor
  --mode csv     write one CSV file per class year
  --mode xlsx    write one workbook with a sheet per class year

The page must contain the roster table (id "dcs-roster" unless --table-id is
given) in the registrar's column layout. Without a file argument the roster
files in the current directory are offered, defaulting to the first by name.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", string(ModeTable), "Output mode: table, csv or xlsx")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Table mode format: text or json")
	cmd.Flags().StringVar(&opts.tableID, "table-id", roster.DefaultTableID, "id attribute of the roster table")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "Directory for csv and xlsx output")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Optional YAML config file")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, opts *options, args []string) error {
	mode := Mode(strings.ToLower(strings.TrimSpace(opts.mode)))
	if mode != ModeTable && mode != ModeCSV && mode != ModeXLSX {
		return fmt.Errorf("invalid mode: %s (must be 'table', 'csv' or 'xlsx')", opts.mode)
	}

	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	// Arguments are valid; later failures are not usage errors
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if err := setupLogger(cfg, opts.verbose, cmd.ErrOrStderr()); err != nil {
		return err
	}
	metrics := logger.DefaultMetrics()
	metrics.Reset()

	path, err := resolveInput(cmd, cfg, args)
	if err != nil {
		return err
	}

	logger.Debug("Reading roster", logger.Fields{
		"file":  path,
		"table": cfg.TableID,
		"mode":  string(mode),
	})

	result, err := roster.New(cfg.TableID).ParseFile(path)
	if err != nil {
		logger.Error("Roster could not be read", logger.Fields{"file": path}, err)
		return err
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d roster values did not match the expected layout, %d rows skipped\n",
			len(result.Issues), result.Skipped)
	}

	for _, s := range result.Students {
		logger.Debug("Decoded student", logger.Fields{"student": s.String()})
	}

	g := student.Group(result.Students)
	metrics.SetGauge("students.total", float64(g.Total()))
	metrics.SetGauge("years.distinct", float64(g.ByYear.Len()))
	metrics.SetGauge("advisors.distinct", float64(g.ByAdvisor.Len()))
	logger.Info("Roster grouped", logger.Fields{
		"file":     path,
		"students": g.Total(),
		"years":    g.ByYear.Len(),
		"advisors": g.ByAdvisor.Len(),
	})

	out := cmd.OutOrStdout()
	switch mode {
	case ModeTable:
		if err := WriteOutput(out, NewReport(g), format); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	case ModeCSV:
		exp, err := export.New(cfg.OutputDir, cfg.FilePrefix)
		if err != nil {
			return err
		}
		logger.Debug("Writing year files", logger.Fields{"dir": exp.Dir()})
		written, err := exp.WriteYears(g)
		for _, p := range written {
			fmt.Fprintf(out, "Wrote %s\n", p)
		}
		if err != nil {
			return fmt.Errorf("writing year files: %w", err)
		}
	case ModeXLSX:
		exp, err := export.New(cfg.OutputDir, cfg.FilePrefix)
		if err != nil {
			return err
		}
		logger.Debug("Writing workbook", logger.Fields{"dir": exp.Dir(), "name": cfg.WorkbookName})
		p, err := exp.WriteWorkbook(cfg.WorkbookName, g)
		if err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", p)
	}

	logger.Debug("Run complete", metrics.Fields())
	return nil
}

// loadConfig reads config and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("table-id") {
		cfg.TableID = opts.tableID
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger installs the default logger for this run, tagged with a run id
func setupLogger(cfg *config.Config, verbose bool, w io.Writer) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = logger.LevelDebug
	}

	logger.SetDefault(logger.New(level, w).With(logger.Fields{
		"run_id": uuid.NewString(),
	}))
	return nil
}

// resolveInput returns the roster path from args, or asks the user to pick one
func resolveInput(cmd *cobra.Command, cfg *config.Config, args []string) (string, error) {
	if len(args) == 1 {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("file not found: %s", path)
			}
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return path, nil
	}

	candidates, err := findCandidates(".", cfg.InputExt)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no *%s files in the current directory", ErrNoCandidates, cfg.InputExt)
	}

	return chooseFile(cmd.InOrStdin(), cmd.OutOrStdout(), candidates)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
