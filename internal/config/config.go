package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ConfigFile  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Reporting settings
	TraceDepth int
	HideFrames []string
	Progress   bool

	// Run history
	History HistoryConfig

	// Command flags
	Flags Flags
}

// HistoryConfig selects the SQL store that keeps past runs
type HistoryConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Enabled reports whether runs are recorded.
func (h HistoryConfig) Enabled() bool {
	return h.Driver != ""
}

// Flags holds command-line flags
type Flags struct {
	Filter     string
	TraceDepth int
	Solutions  bool
	NoProgress bool
	NoHistory  bool
	TestCases  bool
	Limit      int
}

// fileConfig is the shape of fpt.yaml
type fileConfig struct {
	TraceDepth *int          `yaml:"trace_depth"`
	HideFrames []string      `yaml:"hide_frames"`
	Progress   *bool         `yaml:"progress"`
	History    HistoryConfig `yaml:"history"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		ConfigFile:     DefaultConfigFile,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		TraceDepth:     DefaultTraceDepth,
		Progress:       true,
		Flags:          Flags{Limit: DefaultHistoryLimit},
	}
	cfg.HideFrames = make([]string, len(DefaultHideFrames))
	copy(cfg.HideFrames, DefaultHideFrames)
	return cfg
}

// Load builds the effective config: defaults, then the YAML file, then the
// environment, then flags.
func Load(configFile string, flags Flags) (*Config, error) {
	cfg := New()
	if configFile != "" {
		cfg.ConfigFile = configFile
	}

	if err := cfg.LoadFile(cfg.GetConfigPath()); err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile merges a YAML config file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.TraceDepth != nil {
		c.TraceDepth = *fc.TraceDepth
	}
	c.HideFrames = append(c.HideFrames, fc.HideFrames...)
	if fc.Progress != nil {
		c.Progress = *fc.Progress
	}
	if fc.History.Driver != "" {
		c.History.Driver = fc.History.Driver
	}
	if fc.History.DSN != "" {
		c.History.DSN = fc.History.DSN
	}
	return nil
}

// LoadEnv loads .env from the project directory into the process
// environment and applies the FPT_* variables.
func (c *Config) LoadEnv() error {
	envFile := filepath.Join(c.ProjectPath, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv("FPT_TRACE_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FPT_TRACE_DEPTH %q: %w", v, err)
		}
		c.TraceDepth = depth
	}
	if v := os.Getenv("FPT_HISTORY_DRIVER"); v != "" {
		c.History.Driver = v
	}
	if v := os.Getenv("FPT_HISTORY_DSN"); v != "" {
		c.History.DSN = v
	}
	return nil
}

// ApplyFlags copies command-line overrides into the config
func (c *Config) ApplyFlags(flags Flags) {
	if flags.Limit <= 0 {
		flags.Limit = DefaultHistoryLimit
	}
	c.Flags = flags

	if flags.TraceDepth > 0 {
		c.TraceDepth = flags.TraceDepth
	}
	if flags.NoProgress {
		c.Progress = false
	}
	if flags.NoHistory {
		c.History.Driver = ""
	}
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if c.TraceDepth < 1 {
		return fmt.Errorf("trace depth must be at least 1, got %d", c.TraceDepth)
	}
	switch c.History.Driver {
	case "", DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported history driver %q (use %s or %s)", c.History.Driver, DriverSQLite, DriverMySQL)
	}
	return nil
}

// GetConfigPath returns the YAML config path, relative to the project unless absolute
func (c *Config) GetConfigPath() string {
	if filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.ProjectPath, c.ConfigFile)
}

// GetOutputPath returns the full path to the last-run JSON file.
// Resolves to an absolute path so run, list and failures always use the same file.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetHistoryDSN returns the DSN of the history store. For sqlite3 without
// a DSN it defaults to a file next to the JSON output.
func (c *Config) GetHistoryDSN() string {
	if c.History.DSN != "" || c.History.Driver != DriverSQLite {
		return c.History.DSN
	}
	return filepath.Join(c.ProjectPath, c.OutputJSONDir, DefaultSQLiteFile)
}
