package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigDir   = "TAKEN_CONFIG_DIR"
	EnvNotebookDir = "TAKEN_DIR"

	notebookDirFile     = "notebooks_dir"
	defaultNotebookFile = "default_notebook"
	yamlConfigFile      = "config.yaml"
)

// Config holds the settings for a single picker session. It is rebuilt from
// scratch on every resolve so edits to the config files take effect without
// restarting anything.
type Config struct {
	ConfigDir       string
	NotebookDir     string
	DefaultNotebook string
}

// FileConfig is the on-disk shape of the optional config.yaml. The plain
// single-line override files and the TAKEN_* environment variables always
// take precedence over it.
type FileConfig struct {
	NotebooksDir    string `yaml:"notebooks_dir"`
	DefaultNotebook string `yaml:"default_notebook,omitempty"`
}

// Resolve determines the config directory, notebook directory, and default
// notebook name. Precedence per setting: environment variable, plain
// override file, config.yaml, built-in default. Missing or unreadable
// sources fall through silently.
func Resolve(home string) Config {
	cfg := Config{}

	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		cfg.ConfigDir = dir
	} else {
		cfg.ConfigDir = filepath.Join(home, ".config", "taken")
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(cfg.ConfigDir, yamlConfigFile))
	v.SetConfigType("yaml")
	v.ReadInConfig()

	cfg.NotebookDir = firstNonEmpty(
		strings.TrimSpace(os.Getenv(EnvNotebookDir)),
		readLine(filepath.Join(cfg.ConfigDir, notebookDirFile)),
		strings.TrimSpace(v.GetString("notebooks_dir")),
		filepath.Join(home, ".taken", "notebooks"),
	)

	cfg.DefaultNotebook = firstNonEmpty(
		readLine(filepath.Join(cfg.ConfigDir, defaultNotebookFile)),
		strings.TrimSpace(v.GetString("default_notebook")),
	)

	return cfg
}

// NotebookPath returns the file path a notebook name maps to.
func (c Config) NotebookPath(name string) string {
	return filepath.Join(c.NotebookDir, name+".md")
}

// YAMLPath returns the location of the optional config.yaml.
func (c Config) YAMLPath() string {
	return filepath.Join(c.ConfigDir, yamlConfigFile)
}

// Save writes the resolved settings as a starter config.yaml.
func (c Config) Save() error {
	data, err := yaml.Marshal(FileConfig{
		NotebooksDir:    c.NotebookDir,
		DefaultNotebook: c.DefaultNotebook,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(c.YAMLPath(), data, 0o644)
}

// readLine reads a plain-text override file holding a single trimmed line.
// Any read failure means the file does not participate in resolution.
func readLine(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
