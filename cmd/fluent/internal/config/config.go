// Package config resolves the settings of the fluent command from flags,
// FLUENT_* environment variables, the optional fluent.yaml and defaults, in
// that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "fluent.yaml"

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "FLUENT"

// Config is the content of fluent.yaml.
type Config struct {
	// Project names the project in reports; defaults from go.mod.
	Project string `yaml:"project,omitempty" mapstructure:"project"`
	// APIVersion is the target API level declarations are checked against.
	APIVersion string `yaml:"api_version,omitempty" mapstructure:"api_version"`
	// Syscaps lists the capabilities of the target device. Empty skips
	// capability checks.
	Syscaps []string `yaml:"syscaps,omitempty" mapstructure:"syscaps"`
	// Schema is a YAML or TOML metadata file replacing the built-in one,
	// relative to the project root.
	Schema string    `yaml:"schema,omitempty" mapstructure:"schema"`
	Log    LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

// LogConfig configures diagnostics output.
type LogConfig struct {
	Level string `yaml:"level,omitempty" mapstructure:"level"`
	Human bool   `yaml:"human,omitempty" mapstructure:"human"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Config
	// Root is the project directory: the nearest parent holding go.mod, or
	// the start directory.
	Root string
	// ModulePath is the go.mod module path, empty outside a module.
	ModulePath string
	// File is the fluent.yaml that was read, empty if none.
	File string
}

// SchemaPath returns the schema file resolved against the root, or "".
func (r *Resolved) SchemaPath() string {
	if r.Schema == "" || filepath.IsAbs(r.Schema) {
		return r.Schema
	}
	return filepath.Join(r.Root, r.Schema)
}

// Defaults registers the default of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("project", "")
	v.SetDefault("api_version", "")
	v.SetDefault("syscaps", []string{})
	v.SetDefault("schema", "")
	v.SetDefault("log.level", "error")
	v.SetDefault("log.human", true)
}

// LoadOptional reads fluent.yaml from dir if present. Unknown keys are
// errors. It returns the raw bytes for layering into viper.
func LoadOptional(dir string) (*Config, []byte, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, data, nil
}

// Load resolves the settings for the project containing dir. Flags must
// already be bound on v.
func Load(v *viper.Viper, dir string) (*Resolved, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	root := FindProjectRoot(abs)
	modulePath, err := modulePath(root)
	if err != nil {
		return nil, err
	}

	Defaults(v)
	_, data, err := LoadOptional(root)
	if err != nil {
		return nil, err
	}
	res := &Resolved{Root: root, ModulePath: modulePath}
	if data != nil {
		v.SetConfigType("yaml")
		if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", FileName, err)
		}
		res.File = filepath.Join(root, FileName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&res.Config); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	res.Syscaps = cleanList(res.Syscaps)
	if strings.TrimSpace(res.Project) == "" {
		res.Project = defaultProjectName(modulePath, root)
	}
	return res, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding
// go.mod. Outside a module it returns dir.
func FindProjectRoot(dir string) string {
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir
		}
		d = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultProjectName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "fluent_project"
	}
	return base
}

// cleanList trims entries and drops empty ones; an empty result is nil so
// capability checks stay off.
func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
