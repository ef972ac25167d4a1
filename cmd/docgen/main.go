// Package main generates the component reference pages of the documentation
// site from the component registry and the capability schema.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/schema"
)

func main() {
	out := flag.String("out", "", "output directory (default website/docs/components under the repository root)")
	schemaPath := flag.String("schema", "", "schema file replacing the built-in one")
	flag.Parse()

	dir := *out
	if dir == "" {
		root, err := findRepoRoot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
			os.Exit(1)
		}
		dir = filepath.Join(root, "website", "docs", "components")
	}

	s := schema.Default()
	if *schemaPath != "" {
		var err error
		if s, err = schema.LoadFile(*schemaPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schema: %v\n", err)
			os.Exit(1)
		}
	}

	n, err := generate(dir, components.Registry(), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating docs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d component pages in %s\n", n, dir)
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// generate writes one page per registered component plus the category
// file, and returns the number of pages.
func generate(dir string, reg *attr.Registry, s *schema.Schema) (int, error) {
	if err := s.Validate(reg); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	if err := writeCategoryFile(dir); err != nil {
		return 0, err
	}
	names := reg.Names()
	for i, name := range names {
		def, err := reg.Lookup(name)
		if err != nil {
			return 0, err
		}
		page := componentPage(def, s, i+1)
		if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(page), 0644); err != nil {
			return 0, err
		}
	}
	return len(names), nil
}

func writeCategoryFile(dir string) error {
	content := `{
  "label": "Components",
  "position": 50,
  "link": {
    "type": "generated-index",
    "description": "Attributes and availability of every built-in component."
  }
}
`
	return os.WriteFile(filepath.Join(dir, "_category_.json"), []byte(content), 0644)
}

func componentPage(def *attr.Component, s *schema.Schema, position int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---\nid: %s\ntitle: %s\nsidebar_position: %d\n---\n\n", strings.ToLower(def.Name), def.Name, position)

	meta, _ := s.Lookup(def.Name)
	if def.Container {
		b.WriteString("Accepts child components.\n\n")
	} else {
		b.WriteString("Does not accept child components.\n\n")
	}
	if meta.Since != "" {
		fmt.Fprintf(&b, "**Since:** API %s\n\n", meta.Since)
	}
	if meta.Syscap != "" {
		fmt.Fprintf(&b, "**System capability:** `%s`\n\n", meta.Syscap)
	}
	if meta.Deprecated != "" {
		fmt.Fprintf(&b, ":::warning\n%s\n:::\n\n", deprecation(meta.Meta))
	}

	b.WriteString("## Attributes\n\n| Attribute | Since | Notes |\n|---|---|---|\n")
	for _, m := range def.Methods() {
		am, ok := s.Attribute(def.Name, m)
		since, note := "", ""
		if ok {
			since = am.Since
			if am.Deprecated != "" {
				note = deprecation(am)
			}
		}
		if since == "" {
			since = "-"
		}
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", m, since, note)
	}
	return b.String()
}

func deprecation(m schema.Meta) string {
	s := "Deprecated since API " + m.Deprecated + "."
	if m.Replacement != "" {
		s += " Use `" + m.Replacement + "` instead."
	}
	return s
}
