// Package config provides hierarchical configuration for cmdgraph using
// koanf. Values are loaded with priority: environment variables (CMDGRAPH_*)
// > project config (.cmdgraph.yml) > user config
// (~/.config/cmdgraph/config.yml) > defaults.
//
// Configuration only supplies defaults (output filename, fill colors); it
// never changes the command-line argument surface.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// DefaultOutput is the output filename used when none is given on the
// command line or in configuration.
const DefaultOutput = "commands.dot"

// envPrefix namespaces cmdgraph's environment variables,
// e.g. CMDGRAPH_OUTPUT or CMDGRAPH_COLORS_EXECUTABLE.
const envPrefix = "CMDGRAPH_"

// Colors holds the node fill palette.
type Colors struct {
	// Executable is the fill for nodes that terminate a runnable command.
	Executable string `koanf:"executable"`
	// Plain is the fill for every other node.
	Plain string `koanf:"plain"`
}

// Config is the resolved cmdgraph configuration.
type Config struct {
	// Output is the default output path when only an input is given.
	Output string `koanf:"output"`
	Colors Colors `koanf:"colors"`
}

// Load resolves configuration from defaults, config files, and environment.
func Load() (*Config, error) {
	return load(projectConfigPath(), userConfigPath())
}

// load is the testable core of Load; config paths that do not exist are
// silently skipped.
func load(projectPath, userPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		k.Set(key, value)
	}

	for _, path := range []string{userPath, projectPath} {
		if path == "" || !fileExists(path) {
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load environment config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal config")
	}
	return &cfg, nil
}

// defaults returns the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"output":            DefaultOutput,
		"colors.executable": "palegreen",
		"colors.plain":      "white",
	}
}

// envTransform maps CMDGRAPH_COLORS_EXECUTABLE to colors.executable.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

// projectConfigPath returns the per-project config path, relative to the
// current working directory.
func projectConfigPath() string {
	return ".cmdgraph.yml"
}

// userConfigPath returns the XDG-style user config path.
func userConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cmdgraph", "config.yml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
