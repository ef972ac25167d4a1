package core

import (
	"reflect"
	"testing"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

func TestNode_Describe(t *testing.T) {
	nodes, err := Build(components.Registry(), func(b *Builder) error {
		if err := b.Open(components.Row(components.RowOptions{Space: graphics.VP(8)})); err != nil {
			return err
		}
		slider := attr.Must(components.Slider(components.SliderOptions{Value: attr.Ptr(10.0)})).
			BlockColor(graphics.Hex("#fff")).
			OnChange(func(float64, components.SliderChangeMode) {})
		if err := b.Add(slider); err != nil {
			return err
		}
		return b.Close()
	})
	if err != nil {
		t.Fatal(err)
	}

	got := nodes[0].Describe()
	want := map[string]any{
		"component": "Row",
		"options":   map[string]any{"space": "8vp"},
		"children": []any{
			map[string]any{
				"component": "Slider",
				"options": map[string]any{
					"value": 10.0,
					"max":   100.0,
					"step":  1.0,
				},
				"attributes": map[string]any{
					"blockColor": "#FFFFFF",
					"onChange":   "<callback>",
				},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Describe mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestNode_Walk(t *testing.T) {
	nodes, err := Build(nil, func(b *Builder) error {
		if err := b.Open(components.Text(resource.Text("a"))); err != nil {
			return err
		}
		if err := b.Add(components.Span(resource.Text("b"))); err != nil {
			return err
		}
		return b.Close()
	})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	nodes[0].Walk(func(n *Node) bool {
		names = append(names, n.Component)
		return true
	})
	if !reflect.DeepEqual(names, []string{"Text", "Span"}) {
		t.Errorf("Walk visited %v", names)
	}
}
