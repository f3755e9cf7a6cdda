package graphql

import (
	"context"

	"github.com/99designs/gqlgen/codegen/config"
	"github.com/99designs/gqlgen/plugin"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/relgen/compiler/gen"
	"github.com/syssam/relgen/compiler/load"
)

// DirectiveSource is the name of the injected source declaring @relation.
const DirectiveSource = "relgen/directive.graphql"

var (
	_ plugin.Plugin              = (*Plugin)(nil)
	_ plugin.EarlySourceInjector = (*Plugin)(nil)
	_ plugin.ConfigMutator       = (*Plugin)(nil)
)

// Plugin is a gqlgen plugin resolving @relation fields.
type Plugin struct {
	cfg    *gen.Config
	inject bool
	graph  *gen.Graph
}

// NewPlugin returns a plugin configured with the given generator options.
func NewPlugin(opts ...gen.Option) (*Plugin, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Plugin{cfg: cfg, inject: true}, nil
}

// SkipDirective stops the plugin from declaring @relation, for schemas that
// already declare it.
func (p *Plugin) SkipDirective() *Plugin {
	p.inject = false
	return p
}

// Name implements plugin.Plugin.
func (*Plugin) Name() string { return "relgen" }

// InjectSourceEarly implements plugin.EarlySourceInjector.
func (p *Plugin) InjectSourceEarly() *ast.Source {
	if !p.inject {
		return nil
	}
	return &ast.Source{Name: DirectiveSource, Input: load.RelationDirective, BuiltIn: true}
}

// MutateConfig implements plugin.ConfigMutator. It resolves the relations of
// every non built-in source and writes the artifacts when a target is set.
func (p *Plugin) MutateConfig(cfg *config.Config) error {
	sources := make([]*ast.Source, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		if s != nil && !s.BuiltIn {
			sources = append(sources, s)
		}
	}
	models, err := load.ParseSchema(sources...)
	if err != nil {
		return gen.NewGenerationError("parse", "", "cannot parse gqlgen sources", err)
	}
	g, err := gen.NewGraph(p.cfg, models...)
	if err != nil {
		return err
	}
	p.graph = g
	if err := g.Validate(); err != nil {
		return err
	}
	if p.cfg.Target == "" {
		return nil
	}
	return gen.Generate(context.Background(), g)
}

// Graph returns the graph built by the last MutateConfig call.
func (p *Plugin) Graph() *gen.Graph { return p.graph }
