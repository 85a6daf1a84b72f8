package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.TraceDepth != DefaultTraceDepth {
		t.Errorf("expected TraceDepth %d, got %d", DefaultTraceDepth, cfg.TraceDepth)
	}

	if !cfg.Progress {
		t.Error("expected progress to be on by default")
	}

	if cfg.History.Enabled() {
		t.Error("expected history to be off by default")
	}

	if len(cfg.HideFrames) != len(DefaultHideFrames) {
		t.Errorf("expected %d hidden frame patterns, got %d", len(DefaultHideFrames), len(cfg.HideFrames))
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fpt.yaml")
	writeFile(t, path, `
trace_depth: 3
hide_frames:
  - lessons/helpers.go
progress: false
history:
  driver: sqlite3
  dsn: /tmp/history.db
`)

	cfg := New()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TraceDepth != 3 {
		t.Errorf("expected TraceDepth 3, got %d", cfg.TraceDepth)
	}
	if cfg.Progress {
		t.Error("expected progress to be off")
	}
	if cfg.History.Driver != DriverSQLite || cfg.History.DSN != "/tmp/history.db" {
		t.Errorf("unexpected history config: %+v", cfg.History)
	}
	last := cfg.HideFrames[len(cfg.HideFrames)-1]
	if last != "lessons/helpers.go" {
		t.Errorf("expected hide pattern to be appended, got %v", cfg.HideFrames)
	}
}

func TestConfig_LoadFile_Missing(t *testing.T) {
	cfg := New()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
	if cfg.TraceDepth != DefaultTraceDepth {
		t.Errorf("defaults should be untouched, got depth %d", cfg.TraceDepth)
	}
}

func TestConfig_LoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpt.yaml")
	writeFile(t, path, "trace_depth: [not, a, number]\n")

	if err := New().LoadFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestConfig_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "FPT_HISTORY_DRIVER=sqlite3\n")
	t.Setenv("FPT_TRACE_DEPTH", "2")
	t.Setenv("FPT_HISTORY_DRIVER", "")
	t.Setenv("FPT_HISTORY_DSN", "")
	os.Unsetenv("FPT_HISTORY_DRIVER")
	os.Unsetenv("FPT_HISTORY_DSN")

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TraceDepth != 2 {
		t.Errorf("expected TraceDepth 2, got %d", cfg.TraceDepth)
	}
	if cfg.History.Driver != DriverSQLite {
		t.Errorf("expected driver from .env, got %q", cfg.History.Driver)
	}
}

func TestConfig_LoadEnv_InvalidDepth(t *testing.T) {
	t.Setenv("FPT_TRACE_DEPTH", "deep")

	cfg := New()
	cfg.ProjectPath = t.TempDir()
	if err := cfg.LoadEnv(); err == nil {
		t.Error("expected an error for a non-numeric depth")
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "custom.yaml"), "trace_depth: 4\nhistory:\n  driver: mysql\n")
	t.Setenv("FPT_TRACE_DEPTH", "")
	os.Unsetenv("FPT_TRACE_DEPTH")
	t.Setenv("FPT_HISTORY_DRIVER", "sqlite3")

	tests := []struct {
		name       string
		flags      Flags
		wantDepth  int
		wantDriver string
	}{
		{
			name:       "file and environment",
			flags:      Flags{},
			wantDepth:  4,
			wantDriver: DriverSQLite,
		},
		{
			name:       "flags win",
			flags:      Flags{TraceDepth: 7, NoHistory: true},
			wantDepth:  7,
			wantDriver: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.ProjectPath = dir
			cfg.ConfigFile = "custom.yaml"
			if err := cfg.LoadFile(cfg.GetConfigPath()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := cfg.LoadEnv(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			cfg.ApplyFlags(tt.flags)

			if cfg.TraceDepth != tt.wantDepth {
				t.Errorf("expected depth %d, got %d", tt.wantDepth, cfg.TraceDepth)
			}
			if cfg.History.Driver != tt.wantDriver {
				t.Errorf("expected driver %q, got %q", tt.wantDriver, cfg.History.Driver)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "sqlite", mutate: func(c *Config) { c.History.Driver = DriverSQLite }},
		{name: "zero depth", mutate: func(c *Config) { c.TraceDepth = 0 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.History.Driver = "postgres" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{
		ProjectPath:    "/project",
		ConfigFile:     "fpt.yaml",
		OutputJSONDir:  "storage",
		OutputJSONFile: "fpt-results.json",
	}

	if got := cfg.GetConfigPath(); got != "/project/fpt.yaml" {
		t.Errorf("expected /project/fpt.yaml, got %s", got)
	}
	if got := cfg.GetOutputPath(); got != "/project/storage/fpt-results.json" {
		t.Errorf("expected /project/storage/fpt-results.json, got %s", got)
	}

	cfg.ConfigFile = "/etc/fpt.yaml"
	if got := cfg.GetConfigPath(); got != "/etc/fpt.yaml" {
		t.Errorf("expected absolute config path to be kept, got %s", got)
	}

	cfg.History.Driver = DriverSQLite
	if got := cfg.GetHistoryDSN(); got != "/project/storage/fpt-history.db" {
		t.Errorf("expected default sqlite file, got %s", got)
	}
	cfg.History.DSN = "custom.db"
	if got := cfg.GetHistoryDSN(); got != "custom.db" {
		t.Errorf("expected explicit DSN, got %s", got)
	}
}
