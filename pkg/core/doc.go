// Package core assembles attribute builders into frozen component trees.
//
// Attribute builders from the components package accumulate state through
// chained setters. A Builder is the explicit context that arranges them
// into a tree and freezes each one into a Node when it is closed:
//
//	b := core.NewBuilder(components.Registry())
//	b.Open(components.Column().Width(graphics.Percent(100)))
//	b.Add(components.Text(resource.Text("Hello")))
//	b.Close()
//	nodes, err := b.Finish()
//
// # Core Types
//
// Builder tracks the open path from the root to the attribute currently
// being configured. Instance returns that attribute typed as its concrete
// builder, which is how nested declarations reach their component without
// any global state.
//
// Node is the read-only hand-off record: the component name, the options
// the factory stored, a snapshot of the attribute state and the children.
// Describe renders a Node as plain maps for dumps and snapshots.
//
// # Errors
//
// Setter failures recorded on an attribute surface as a BuildError when
// the attribute is closed. The first failure stops the builder; later calls
// return the same error.
package core
