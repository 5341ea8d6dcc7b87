package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for env := range envOverrides {
		t.Setenv(env, "")
	}
}

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   New(),
			expected: "tests",
		},
		{
			name: "with project path flag",
			config: &Config{
				ProjectPath: ".",
				TestPath:    "tests",
				Flags: Flags{
					ProjectPath: "/project",
				},
			},
			expected: "/project/tests",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "/absolute/path",
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_LoadWithoutFiles(t *testing.T) {
	clearEnv(t)
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debug() {
		t.Error("debug should be disabled without settings")
	}
	if cfg.Selector() != "" {
		t.Errorf("expected empty selector, got %q", cfg.Selector())
	}
}

func TestConfig_LoadSettingsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "debug: true\ntest-directory: unit\nignore: fixtures, testdata\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Debug() {
		t.Error("expected debug to be enabled")
	}
	if cfg.Selector() != "unit" {
		t.Errorf("expected selector unit, got %q", cfg.Selector())
	}
	ignore := cfg.PathsToIgnore()
	if len(ignore) != 2 || ignore[0] != "fixtures" || ignore[1] != "testdata" {
		t.Errorf("unexpected paths to ignore: %v", ignore)
	}
}

func TestConfig_LoadInvalidSettingsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("debug: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.Load(); err == nil {
		t.Error("expected error for malformed settings file")
	}
}

func TestConfig_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("test-directory: unit\n"), 0644)
	os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte("XRUN_TEST_DIRECTORY=integration\nXRUN_HISTORY_DSN=root@tcp(db:3306)/xrun\n"), 0644)

	cfg := New()
	cfg.ProjectPath = dir

	t.Run("dotenv overrides settings file", func(t *testing.T) {
		if err := cfg.Load(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Selector() != "integration" {
			t.Errorf("expected selector integration, got %q", cfg.Selector())
		}
		if cfg.HistoryDSN() != "root@tcp(db:3306)/xrun" {
			t.Errorf("unexpected dsn %q", cfg.HistoryDSN())
		}
	})

	t.Run("process environment overrides dotenv", func(t *testing.T) {
		t.Setenv("XRUN_TEST_DIRECTORY", "feature")
		if err := cfg.Load(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Selector() != "feature" {
			t.Errorf("expected selector feature, got %q", cfg.Selector())
		}
	})

	t.Run("flag overrides everything", func(t *testing.T) {
		cfg.Flags.Selector = "flagged"
		if cfg.Selector() != "flagged" {
			t.Errorf("expected selector flagged, got %q", cfg.Selector())
		}
	})
}

func TestConfig_WriteDefault(t *testing.T) {
	clearEnv(t)
	cfg := New()
	cfg.ProjectPath = t.TempDir()

	created, err := cfg.WriteDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected settings file to be created")
	}

	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Debug() {
		t.Error("scaffolded settings should not enable debug")
	}
	if cfg.Selector() != DefaultNamespace {
		t.Errorf("expected selector %s, got %q", DefaultNamespace, cfg.Selector())
	}

	created, err = cfg.WriteDefault()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("existing settings file must not be overwritten")
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("expected Extension %s, got %s", DefaultExtension, cfg.Extension)
	}
	if filepath.Base(cfg.GetMarkerPath()) != DefaultMarkerFile {
		t.Errorf("unexpected marker path %s", cfg.GetMarkerPath())
	}
}
