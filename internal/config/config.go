package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for one run invocation
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string
	ConfigFile  string
	EnvFile     string
	MarkerFile  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Discovery settings
	Extension string
	Namespace string

	// Settings read from the settings file and environment
	Settings map[string]string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Selector    string
	Debug       bool
	ProgressBar bool
	TestCases   bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		ConfigFile:     DefaultConfigFile,
		EnvFile:        DefaultEnvFile,
		MarkerFile:     DefaultMarkerFile,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Extension:      DefaultExtension,
		Namespace:      DefaultNamespace,
		Settings:       make(map[string]string),
	}
}

// Load reads the settings file and the environment. A missing settings file
// leaves every setting empty.
func (c *Config) Load() error {
	settings, err := readSettings(c.GetConfigPath())
	if err != nil {
		return err
	}

	// .env file might not exist, that's okay - use environment variables
	dotenv, err := godotenv.Read(c.GetEnvPath())
	if err != nil {
		dotenv = map[string]string{}
	}
	for env, key := range envOverrides {
		if v, ok := dotenv[env]; ok && v != "" {
			settings[key] = v
		}
		if v := os.Getenv(env); v != "" {
			settings[key] = v
		}
	}

	c.Settings = settings
	return nil
}

func readSettings(path string) (map[string]string, error) {
	settings := make(map[string]string)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	for key, value := range raw {
		if value == nil {
			settings[key] = ""
			continue
		}
		settings[key] = fmt.Sprint(value)
	}
	return settings, nil
}

// Get returns a setting, or "" when it is not set
func (c *Config) Get(key string) string {
	return c.Settings[key]
}

// Debug reports whether verbose traces and per-type messages are enabled
func (c *Config) Debug() bool {
	return c.Flags.Debug || c.Get(SettingDebug) == "true"
}

// Selector returns the substring a type identifier must contain to run
func (c *Config) Selector() string {
	if c.Flags.Selector != "" {
		return c.Flags.Selector
	}
	return c.Get(SettingTestDirectory)
}

// PathsToIgnore returns the directory names skipped during discovery
func (c *Config) PathsToIgnore() []string {
	var paths []string
	for _, p := range strings.Split(c.Get(SettingIgnore), ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// HistoryDSN returns the MySQL DSN for run history, or "" when disabled
func (c *Config) HistoryDSN() string {
	return c.Get(SettingHistoryDSN)
}

// GetProjectPath returns the project path, using flag if provided
func (c *Config) GetProjectPath() string {
	if c.Flags.ProjectPath != "" {
		return c.Flags.ProjectPath
	}
	return c.ProjectPath
}

// GetTestPath returns the root directory searched for test sources
func (c *Config) GetTestPath() string {
	if filepath.IsAbs(c.TestPath) {
		return c.TestPath
	}
	return filepath.Join(c.GetProjectPath(), c.TestPath)
}

// GetConfigPath returns the path of the settings file
func (c *Config) GetConfigPath() string {
	return filepath.Join(c.GetProjectPath(), c.ConfigFile)
}

// GetEnvPath returns the path of the optional .env file
func (c *Config) GetEnvPath() string {
	return filepath.Join(c.GetProjectPath(), c.EnvFile)
}

// GetMarkerPath returns the path of the run-in-progress sentinel
func (c *Config) GetMarkerPath() string {
	return filepath.Join(c.GetProjectPath(), c.MarkerFile)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and errors always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.GetProjectPath(), c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
