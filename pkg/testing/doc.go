// Package testing provides finders and snapshots over frozen component
// trees.
//
// # Quick Start
//
// Evaluate a source, then query the nodes:
//
//	func TestSettingsPage(t *testing.T) {
//	    res, err := dsl.Run(src, "settings.fluent", dsl.Env{})
//	    require.NoError(t, err)
//
//	    slider := fluenttest.Find(res.Nodes, fluenttest.ByComponent("Slider")).First()
//	    title := fluenttest.Find(res.Nodes, fluenttest.ByText("Settings"))
//	    if !title.Exists() {
//	        t.Error("expected a Settings title")
//	    }
//	}
//
// # Snapshot Testing
//
// Compare node trees against YAML golden files:
//
//	fluenttest.CaptureSnapshot(res.Nodes).MatchesFile(t, "testdata/settings.snapshot.yaml")
//
// Update snapshots with:
//
//	FLUENT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fluenttest "github.com/go-drift/fluent/pkg/testing"
package testing
