package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/fluent/pkg/core"
	"github.com/go-drift/fluent/pkg/dsl"
	"github.com/go-drift/fluent/pkg/schema"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Evaluate declaration files and report errors",
		Long: `check evaluates every file and prints its errors and capability
findings. Event attributes need no handlers: unknown identifiers passed to
on* attributes are bound to callbacks that do nothing.

The exit status is non-zero if any file has an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			return a.check(cmd.OutOrStdout(), r, args)
		},
	}
}

func (a *app) check(out io.Writer, r *schema.Resolver, files []string) error {
	sym := symbolsFor(out)
	failed := 0
	for _, path := range files {
		if err := a.checkFile(out, sym, r, path); err != nil {
			a.log.With("file", path).Debug(err.Error())
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(files))
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("%d file(s) ok", len(files))))
	return nil
}

func (a *app) checkFile(out io.Writer, sym symbols, r *schema.Resolver, path string) error {
	res, err := runFile(path, dsl.Env{Resolver: r, Logger: a.log, StubHandlers: true})
	if err != nil {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render(sym.fail), path)
		fmt.Fprintf(out, "  %s\n", errorStyle.Render(err.Error()))
		return err
	}

	if res.HasErrors() {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render(sym.fail), path)
	} else {
		fmt.Fprintf(out, "%s %s %s\n", successStyle.Render(sym.ok), path,
			mutedStyle.Render(fmt.Sprintf("(%d components)", countNodes(res.Nodes))))
	}
	for _, d := range res.Diagnostics {
		if d.Severity == schema.SeverityError {
			fmt.Fprintf(out, "  %s\n", errorStyle.Render(d.String()))
		} else {
			fmt.Fprintf(out, "  %s %s\n", warningStyle.Render(sym.warn), d.String())
		}
	}
	return res.Err()
}

func runFile(path string, env dsl.Env) (*dsl.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dsl.Run(f, path, env)
}

func countNodes(roots []*core.Node) int {
	n := 0
	for _, root := range roots {
		root.Walk(func(*core.Node) bool {
			n++
			return true
		})
	}
	return n
}
