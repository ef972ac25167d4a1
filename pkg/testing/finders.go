package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/core"
	"github.com/go-drift/fluent/pkg/resource"
)

// Finder locates nodes in component trees.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *core.Node) []*core.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// Find evaluates f against every root in order.
func Find(roots []*core.Node, f Finder) FinderResult {
	var nodes []*core.Node
	for _, root := range roots {
		nodes = append(nodes, f.Evaluate(root)...)
	}
	return FinderResult{nodes: nodes, finder: f}
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*core.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *core.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *core.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *core.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*core.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// ByComponent returns a finder that matches nodes of the named component.
func ByComponent(name string) Finder {
	return &predicateFinder{
		fn:   func(n *core.Node) bool { return n.Component == name },
		desc: fmt.Sprintf("ByComponent(%s)", name),
	}
}

// ByID returns a finder that matches nodes whose id attribute equals id.
func ByID(id string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			v, ok := n.Lookup("id")
			return ok && v == id
		},
		desc: fmt.Sprintf("ByID(%q)", id),
	}
}

// ByState returns a finder that matches nodes whose attribute key holds a
// value deeply equal to want.
func ByState(key string, want any) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			v, ok := n.Lookup(key)
			return ok && reflect.DeepEqual(v, want)
		},
		desc: fmt.Sprintf("ByState(%s=%v)", key, want),
	}
}

// ByAttribute returns a finder that matches nodes where key was set,
// whatever its value.
func ByAttribute(key string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			_, ok := n.Lookup(key)
			return ok
		},
		desc: fmt.Sprintf("ByAttribute(%s)", key),
	}
}

// ByText returns a finder that matches Text, Span and labelled Button
// nodes whose literal content equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			s, ok := literalOf(n)
			return ok && s == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches the nodes ByText would
// consider whose literal content contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n *core.Node) bool {
			s, ok := literalOf(n)
			return ok && strings.Contains(s, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// literalOf extracts the literal text a node displays. Resource-backed
// content has no literal.
func literalOf(n *core.Node) (string, bool) {
	var s resource.Str
	switch o := n.Options.(type) {
	case components.TextContent:
		s = o.Content
	case resource.Str:
		s = o
	case components.ButtonOptions:
		s = o.Label
	default:
		return "", false
	}
	return s.Literal()
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(*core.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *core.Node) []*core.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*core.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *core.Node) []*core.Node {
	var results []*core.Node
	seen := make(map[*core.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// Search within each ancestor's subtree, skipping the ancestor itself.
		for _, child := range ancestor.Children {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' that are ancestors of
// nodes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root *core.Node) []*core.Node {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	var results []*core.Node
	for _, candidate := range f.matching.Evaluate(root) {
		for _, d := range descendants {
			if candidate != d && contains(candidate, d) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching' that
// are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// contains reports whether target is in root's subtree.
func contains(root, target *core.Node) bool {
	found := false
	root.Walk(func(n *core.Node) bool {
		if n == target {
			found = true
		}
		return !found
	})
	return found
}

// collectMatches performs depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches(root *core.Node, predicate func(*core.Node) bool) []*core.Node {
	var results []*core.Node
	root.Walk(func(n *core.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
