// Package config provides configuration parsing for the uepyside tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default name for the tool configuration file
const ConfigFileName = ".uepyside.yaml"

// DefaultPackage is the package managed when nothing else is configured
const DefaultPackage = "PySide6"

// DefaultRemnantPatterns match the files the managed package leaves behind in
// site-packages after an uninstall
var DefaultRemnantPatterns = []string{"PySide6*", "shiboken6*", "*pyside6*"}

// Config represents the .uepyside.yaml structure
type Config struct {
	Package          string   `yaml:"package,omitempty"`
	EditorExecutable string   `yaml:"editor_executable,omitempty"`
	PipArgs          []string `yaml:"pip_args,omitempty"`
	RemnantPatterns  []string `yaml:"remnant_patterns,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Package:         DefaultPackage,
		RemnantPatterns: append([]string{}, DefaultRemnantPatterns...),
	}
}

// Load reads the configuration from configPath, falling back to defaults when
// the file does not exist. Environment overrides (UEPYSIDE_PACKAGE,
// UEPYSIDE_EDITOR_EXE) are applied last; a .env file in the working directory
// is honored if present.
func Load(configPath string) (*Config, error) {
	// Best effort only; a missing .env file is the normal case
	_ = godotenv.Load()

	cfg := Default()

	if configPath == "" {
		configPath = ConfigFileName
	}

	// Basic path validation to address gosec G304; has to happen before the
	// join below cleans the path
	if strings.Contains(configPath, "..") {
		return nil, fmt.Errorf("invalid config path: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, configPath)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is validated above
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}
	if len(cfg.RemnantPatterns) == 0 {
		cfg.RemnantPatterns = append([]string{}, DefaultRemnantPatterns...)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded configuration
func (c *Config) applyEnv() {
	if pkg := os.Getenv("UEPYSIDE_PACKAGE"); pkg != "" {
		c.Package = pkg
	}
	if exe := os.Getenv("UEPYSIDE_EDITOR_EXE"); exe != "" {
		c.EditorExecutable = exe
	}
}
