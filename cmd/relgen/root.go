package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/syssam/relgen/compiler/gen"
	"github.com/syssam/relgen/compiler/load"
	"github.com/syssam/relgen/contrib/graphql"
)

// env carries what every command needs once configuration is loaded.
type env struct {
	cfg *gen.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		e          env
	)
	root := &cobra.Command{
		Use:           "relgen",
		Short:         "Resolve @relation directives in GraphQL schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(viper.New(), cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			if e.log, err = s.logger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			e.cfg, err = s.config(e.log)
			return err
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./relgen.yaml)")
	flags.StringSlice("non-creatable", nil, "models that cannot be created from a relation")
	flags.String("format", "", "report format: json, yaml or msgpack")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newResolveCmd(&e),
		newGenCmd(&e),
		newWatchCmd(&e),
		newInitCmd(),
	)
	return root
}

func newResolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [paths...]",
		Short: "Print the relation report, failing on unresolved relations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph(cmd.Context(), e.cfg, args)
			if err != nil {
				return err
			}
			if err := gen.WriteReport(cmd.OutOrStdout(), g, e.cfg.Format); err != nil {
				return err
			}
			return g.Validate()
		},
	}
}

func newGenCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [paths...]",
		Short: "Write the relation report and constants to the target directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd.Context(), e.cfg, args)
		},
	}
	targetFlags(cmd)
	return cmd
}

func newWatchCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Regenerate on every schema change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generate(cmd.Context(), e.cfg, args); err != nil {
				e.log.Error("generate", "error", err)
			}
			e.log.Info("watching", "paths", args)
			return load.Watch(cmd.Context(), args, func(ctx context.Context) error {
				if err := generate(ctx, e.cfg, args); err != nil {
					e.log.Error("generate", "error", err)
				}
				return nil
			})
		},
	}
	targetFlags(cmd)
	return cmd
}

func newInitCmd() *cobra.Command {
	var gqlgen, out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Declare @relation in a gqlgen project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := graphql.LoadGQLGenConfig(gqlgen)
			if err != nil {
				return err
			}
			if err := cfg.InjectRelationDirective(out); err != nil {
				return err
			}
			if err := cfg.Save(gqlgen); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "declared @relation in %s and registered it in %s\n", out, gqlgen)
			fmt.Fprintln(cmd.OutOrStdout(), "when running gqlgen with the relgen plugin, use graphql.NewPlugin().SkipDirective()")
			return nil
		},
	}
	cmd.Flags().StringVar(&gqlgen, "gqlgen", "gqlgen.yml", "gqlgen config file")
	cmd.Flags().StringVar(&out, "out", "graph/relation.graphqls", "directive schema file")
	return cmd
}

func targetFlags(cmd *cobra.Command) {
	cmd.Flags().String("target", "", "output directory")
	cmd.Flags().String("package", "", "import path of the generated package")
	cmd.Flags().Int("workers", 0, "files written concurrently (default GOMAXPROCS)")
}

func graph(ctx context.Context, cfg *gen.Config, paths []string) (*gen.Graph, error) {
	models, err := load.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, models...)
}

func generate(ctx context.Context, cfg *gen.Config, paths []string) error {
	g, err := graph(ctx, cfg, paths)
	if err != nil {
		return err
	}
	return gen.Generate(ctx, g)
}
