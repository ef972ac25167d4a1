package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/schema"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the registered components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.schema()
			if err != nil {
				return err
			}
			return listComponents(cmd.OutOrStdout(), s)
		},
	}
}

func listComponents(out io.Writer, s *schema.Schema) error {
	reg := components.Registry()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHILDREN\tMETHODS\tSINCE\tSYSCAP\tNOTE")
	for _, name := range reg.Names() {
		def, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		meta, _ := s.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			name,
			yesNo(def.Container),
			len(def.Methods()),
			orDash(meta.Since),
			orDash(meta.Syscap),
			deprecationNote(meta.Meta),
		)
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func deprecationNote(m schema.Meta) string {
	if m.Deprecated == "" {
		return ""
	}
	note := "deprecated in API " + m.Deprecated
	if m.Replacement != "" {
		note += ", use " + m.Replacement
	}
	return note
}
