package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load
const EnvPrefix = "ROSTER"

// Config holds the settings for one run
type Config struct {
	// TableID is the id attribute of the student table on the roster page
	TableID string `yaml:"table_id" envconfig:"TABLE_ID" default:"dcs-roster" validate:"required"`

	// InputExt is the extension of candidate roster files offered when no file is given
	InputExt string `yaml:"input_ext" envconfig:"INPUT_EXT" default:".html" validate:"required,startswith=."`

	// OutputDir is where year files and workbooks are written
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"." validate:"required"`

	// FilePrefix is prepended to the year to name each CSV file
	FilePrefix string `yaml:"file_prefix" envconfig:"FILE_PREFIX" default:"dcs_students_" validate:"excludesall=/\\"`

	// WorkbookName is the file name of the xlsx workbook
	WorkbookName string `yaml:"workbook_name" envconfig:"WORKBOOK_NAME" default:"dcs_students.xlsx" validate:"required,endswith=.xlsx,excludesall=/\\"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
}

var validate = validator.New()

// Load builds a Config from defaults, the environment and, if path is
// not empty, a YAML file
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config from env: %w", err)
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeFile overlays the non-empty values of a YAML file onto cfg
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	c.Merge(file)
	return nil
}

// Merge copies every non-empty field of other onto c
func (c *Config) Merge(other Config) {
	if other.TableID != "" {
		c.TableID = other.TableID
	}
	if other.InputExt != "" {
		c.InputExt = other.InputExt
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.FilePrefix != "" {
		c.FilePrefix = other.FilePrefix
	}
	if other.WorkbookName != "" {
		c.WorkbookName = other.WorkbookName
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
