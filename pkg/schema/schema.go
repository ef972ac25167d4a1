// Package schema holds the capability metadata of components and their
// attributes: the API version that introduced them, the version that
// deprecated them and the system capability they need. A Resolver checks
// declarations against a target platform.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// Meta annotates a component or an attribute. Versions are API levels such
// as "9" or "4.1"; empty fields do not apply.
type Meta struct {
	Since       string `yaml:"since,omitempty" toml:"since,omitempty"`
	Deprecated  string `yaml:"deprecated,omitempty" toml:"deprecated,omitempty"`
	Replacement string `yaml:"replacement,omitempty" toml:"replacement,omitempty"`
	Syscap      string `yaml:"syscap,omitempty" toml:"syscap,omitempty"`
}

// Component is the metadata of one component.
type Component struct {
	Meta       `yaml:",inline"`
	Attributes map[string]Meta `yaml:"attributes,omitempty" toml:"attributes,omitempty"`
}

// Schema maps component names to their metadata. Common holds the
// attributes every component shares.
type Schema struct {
	Common     map[string]Meta      `yaml:"common,omitempty" toml:"common,omitempty"`
	Components map[string]Component `yaml:"components" toml:"components"`
}

// Format is a schema file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fluenterrors.TypeMismatch("schema", path, "*.yaml", "*.yml", "*.toml")
}

// Load decodes a schema from r.
func Load(r io.Reader, format Format) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var s Schema
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	default:
		return nil, fluenterrors.TypeMismatch("format", string(format), string(FormatYAML), string(FormatTOML))
	}
	if err != nil {
		return nil, &fluenterrors.ParseError{Filename: "schema." + string(format), Err: err}
	}
	if s.Components == nil {
		s.Components = map[string]Component{}
	}
	return &s, nil
}

// LoadFile reads a YAML or TOML schema file.
func LoadFile(path string) (*Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema: %w", err)
	}
	defer f.Close()
	s, err := Load(f, format)
	var pe *fluenterrors.ParseError
	if fluenterrors.As(err, &pe) {
		pe.Filename = path
	}
	return s, err
}

//go:embed default.yaml
var defaultSchema []byte

// Default returns the embedded schema describing every built-in component.
var Default = sync.OnceValue(func() *Schema {
	s, err := Load(bytes.NewReader(defaultSchema), FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("schema: embedded default: %v", err))
	}
	return s
})

// Lookup returns the metadata of a component.
func (s *Schema) Lookup(component string) (Component, bool) {
	c, ok := s.Components[component]
	return c, ok
}

// Attribute returns the metadata of an attribute, falling back to the
// common attributes.
func (s *Schema) Attribute(component, attribute string) (Meta, bool) {
	if c, ok := s.Components[component]; ok {
		if m, ok := c.Attributes[attribute]; ok {
			return m, true
		}
	}
	m, ok := s.Common[attribute]
	return m, ok
}

// Names returns the annotated component names in sorted order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.Components))
	for name := range s.Components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks that every annotated component and attribute exists in
// reg and that every version is well formed.
func (s *Schema) Validate(reg *attr.Registry) error {
	var errs []error
	for _, name := range s.Names() {
		def, err := reg.Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c := s.Components[name]
		errs = append(errs, c.Meta.validate(name, ""))
		for _, a := range sortedKeys(c.Attributes) {
			if !def.HasMethod(a) {
				errs = append(errs, fluenterrors.UnknownAttribute(name, a))
			}
			errs = append(errs, c.Attributes[a].validate(name, a))
		}
	}
	for _, a := range sortedKeys(s.Common) {
		for _, name := range reg.Names() {
			def, _ := reg.Lookup(name)
			if !def.HasMethod(a) {
				errs = append(errs, fluenterrors.UnknownAttribute(name, a))
				break
			}
		}
		errs = append(errs, s.Common[a].validate("common", a))
	}
	return fluenterrors.Join(errs...)
}

func (m Meta) validate(component, attribute string) error {
	field := component
	if attribute != "" {
		field += "." + attribute
	}
	for _, v := range []string{m.Since, m.Deprecated} {
		if v == "" {
			continue
		}
		if _, err := normalizeVersion(v); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
