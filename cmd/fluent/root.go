package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/fluent/cmd/fluent/internal/config"
	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/log"
	"github.com/go-drift/fluent/pkg/schema"
)

// app carries the state shared by the subcommands. It is filled by the
// root PersistentPreRunE before any subcommand runs.
type app struct {
	v   *viper.Viper
	dir string
	cfg *config.Resolved
	log *log.Logger
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"api-version": "api_version",
	"syscap":      "syscaps",
	"schema":      "schema",
	"log-level":   "log.level",
	"human":       "log.human",
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "fluent",
		Short: "Check and inspect declarative component files",
		Long: `fluent evaluates component declaration files against the built-in
component registry and reports errors located in the source. With a target
API version or a device capability list it also reports attributes the
target does not support.

Settings come from flags, FLUENT_* environment variables and fluent.yaml in
the project root, in that order.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.dir, "dir", "C", ".", "Project directory")
	f.String("api-version", "", "Target API version, e.g. 10")
	f.StringSlice("syscap", nil, "System capability of the target device (repeatable)")
	f.String("schema", "", "Component metadata file (.yaml or .toml) replacing the built-in one")
	f.String("log-level", "", "Log level: debug, info, warn, error")
	f.Bool("human", true, "Human-readable log output")
	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newDumpCmd(a))
	cmd.AddCommand(newComponentsCmd(a))
	cmd.AddCommand(newDescribeCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.dir)
	if err != nil {
		return err
	}
	logger, err := log.New(log.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	a.cfg = cfg
	a.log = logger.With("project", cfg.Project)
	if cfg.File != "" {
		a.log.Debug("loaded " + cfg.File)
	}
	return nil
}

// schema returns the configured component metadata, checked against the
// registry.
func (a *app) schema() (*schema.Schema, error) {
	path := a.cfg.SchemaPath()
	if path == "" {
		return schema.Default(), nil
	}
	s, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(components.Registry()); err != nil {
		return nil, fmt.Errorf("schema %s does not match the registry: %w", path, err)
	}
	a.log.Debug("using schema " + path)
	return s, nil
}

func (a *app) resolver() (*schema.Resolver, error) {
	s, err := a.schema()
	if err != nil {
		return nil, err
	}
	return schema.NewResolver(s, schema.Target{
		APIVersion: a.cfg.APIVersion,
		Syscaps:    a.cfg.Syscaps,
	}, a.log)
}
