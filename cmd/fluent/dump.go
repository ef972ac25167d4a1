package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fluent/pkg/core"
	"github.com/go-drift/fluent/pkg/dsl"
)

type dumpOptions struct {
	format string
}

func newDumpCmd(a *app) *cobra.Command {
	opts := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the component trees a file declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "o", "yaml", "Output format: yaml or json")
	return cmd
}

// dumpPayload mirrors the snapshot file layout.
type dumpPayload struct {
	Roots []map[string]any `yaml:"roots" json:"roots"`
}

func (a *app) dump(out io.Writer, path string, opts *dumpOptions) error {
	if opts.format != "yaml" && opts.format != "json" {
		return fmt.Errorf("unknown format %q: want yaml or json", opts.format)
	}
	res, err := runFile(path, dsl.Env{Logger: a.log, StubHandlers: true})
	if err != nil {
		return err
	}
	return writeTrees(out, res.Nodes, opts.format)
}

func writeTrees(out io.Writer, roots []*core.Node, format string) error {
	payload := dumpPayload{Roots: make([]map[string]any, len(roots))}
	for i, n := range roots {
		payload.Roots[i] = n.Describe()
	}
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	return enc.Close()
}
