package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/schema"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Show the attribute methods of a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema()
			if err != nil {
				return err
			}
			return describeComponent(cmd.OutOrStdout(), s, args[0])
		},
	}
}

func describeComponent(out io.Writer, s *schema.Schema, name string) error {
	def, err := components.Registry().Lookup(name)
	if err != nil {
		return err
	}
	meta, _ := s.Lookup(name)

	fmt.Fprintln(out, headerStyle.Render(name))
	fmt.Fprintf(out, "  children: %s\n", yesNo(def.Container))
	if meta.Since != "" {
		fmt.Fprintf(out, "  since:    API %s\n", meta.Since)
	}
	if meta.Syscap != "" {
		fmt.Fprintf(out, "  syscap:   %s\n", meta.Syscap)
	}
	if note := deprecationNote(meta.Meta); note != "" {
		fmt.Fprintf(out, "  %s\n", warningStyle.Render(note))
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSINCE\tNOTE")
	for _, m := range def.Methods() {
		am, ok := s.Attribute(name, m)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t\n", m)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, orDash(am.Since), deprecationNote(am))
	}
	return w.Flush()
}
