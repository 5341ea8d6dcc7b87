package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type defaultSettings struct {
	Debug         string `yaml:"debug"`
	TestDirectory string `yaml:"test-directory"`
}

// WriteDefault creates the settings file with default values. It returns
// false without touching anything when the file already exists.
func (c *Config) WriteDefault() (bool, error) {
	path := c.GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat settings file: %w", err)
	}

	data, err := yaml.Marshal(defaultSettings{
		Debug:         "false",
		TestDirectory: DefaultNamespace,
	})
	if err != nil {
		return false, fmt.Errorf("marshal default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("write settings file: %w", err)
	}
	return true, nil
}
