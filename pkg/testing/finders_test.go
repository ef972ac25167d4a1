package testing

import (
	"testing"

	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/core"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// settingsTree builds:
//
//	Column#root
//	  Text "Settings"
//	  Row
//	    Text "Volume" { Span "dB" }
//	    Slider (blockColor)
//	  Button "Save"#save
func settingsTree(t *testing.T) []*core.Node {
	t.Helper()
	nodes, err := core.Build(components.Registry(), func(b *core.Builder) error {
		if err := b.Open(components.Column().ID("root")); err != nil {
			return err
		}
		if err := b.Add(components.Text(resource.Text("Settings")).FontSize(graphics.FP(20))); err != nil {
			return err
		}
		if err := b.Open(components.Row()); err != nil {
			return err
		}
		if err := b.Open(components.Text(resource.Text("Volume"))); err != nil {
			return err
		}
		if err := b.Add(components.Span(resource.Text("dB"))); err != nil {
			return err
		}
		if err := b.Close(); err != nil {
			return err
		}
		slider, err := components.Slider()
		if err != nil {
			return err
		}
		if err := b.Add(slider.BlockColor(graphics.Solid(graphics.ColorWhite))); err != nil {
			return err
		}
		if err := b.Close(); err != nil {
			return err
		}
		if err := b.Add(components.ButtonWithLabel(resource.Text("Save")).ID("save")); err != nil {
			return err
		}
		return b.Close()
	})
	if err != nil {
		t.Fatalf("building tree: %v", err)
	}
	return nodes
}

func TestByComponent(t *testing.T) {
	roots := settingsTree(t)

	texts := Find(roots, ByComponent("Text"))
	if texts.Count() != 2 {
		t.Fatalf("expected 2 Text nodes, got %d", texts.Count())
	}
	if s, _ := texts.At(1).Options.(components.TextContent).Content.Literal(); s != "Volume" {
		t.Errorf("expected second Text to be Volume, got %q", s)
	}
	if Find(roots, ByComponent("Toggle")).Exists() {
		t.Error("should not find Toggle")
	}
}

func TestByText(t *testing.T) {
	roots := settingsTree(t)

	for _, text := range []string{"Settings", "dB", "Save"} {
		if !Find(roots, ByText(text)).Exists() {
			t.Errorf("expected to find text %q", text)
		}
	}
	if Find(roots, ByText("Set")).Exists() {
		t.Error("ByText should match whole content only")
	}
	if got := Find(roots, ByTextContaining("S")).Count(); got != 2 {
		t.Errorf("expected 2 nodes containing S, got %d", got)
	}
}

func TestByIDAndState(t *testing.T) {
	roots := settingsTree(t)

	if got := Find(roots, ByID("save")).First().Component; got != "Button" {
		t.Errorf("ByID(save) = %s, want Button", got)
	}
	if Find(roots, ByID("missing")).FirstOrNil() != nil {
		t.Error("expected nil for missing id")
	}
	white := Find(roots, ByState("blockColor", graphics.Solid(graphics.ColorWhite)))
	if white.Count() != 1 || white.First().Component != "Slider" {
		t.Errorf("ByState(blockColor) matched %d nodes", white.Count())
	}
	if got := Find(roots, ByAttribute("fontSize")).Count(); got != 1 {
		t.Errorf("expected 1 node with fontSize, got %d", got)
	}
}

func TestDescendantAndAncestor(t *testing.T) {
	roots := settingsTree(t)

	inRow := Find(roots, Descendant(ByComponent("Row"), ByComponent("Text")))
	if inRow.Count() != 1 {
		t.Fatalf("expected 1 Text under Row, got %d", inRow.Count())
	}
	if s, _ := inRow.First().Options.(components.TextContent).Content.Literal(); s != "Volume" {
		t.Errorf("unexpected Text under Row: %q", s)
	}

	holders := Find(roots, Ancestor(ByText("dB"), ByPredicate(func(n *core.Node) bool { return true })))
	var names []string
	for _, n := range holders.All() {
		names = append(names, n.Component)
	}
	if len(names) != 3 || names[0] != "Column" || names[1] != "Row" || names[2] != "Text" {
		t.Errorf("ancestors of dB = %v, want [Column Row Text]", names)
	}
}

func TestFinderResult_PanicsWithDescription(t *testing.T) {
	roots := settingsTree(t)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); msg != `Finder found no nodes: ByText("nope")` {
			t.Errorf("unexpected panic message %q", msg)
		}
	}()
	Find(roots, ByText("nope")).First()
}
