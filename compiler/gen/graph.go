package gen

import (
	"fmt"

	"github.com/syssam/relgen/compiler/load"
)

// Graph holds the resolved models and the relation diagnostics found
// while resolving them.
type Graph struct {
	*Config
	// Models holds the enriched models, in their original order.
	Models []*load.Model
	// Diagnostics holds the relation errors recorded by the resolver.
	Diagnostics []*RelationError
}

// NewGraph checks the models for duplicate names and resolves their
// relations. Only structural errors are returned, relation diagnostics
// are kept on the graph and reported by Validate.
func NewGraph(c *Config, models ...*load.Model) (*Graph, error) {
	if c == nil {
		c = MustNewConfig()
	}
	seen := make(map[string]struct{}, len(models))
	for _, m := range models {
		if m == nil {
			return nil, NewSchemaError("", "", "nil model", nil)
		}
		if m.Name == "" {
			return nil, NewSchemaError("", "", "model name cannot be empty", nil)
		}
		if _, ok := seen[m.Name]; ok {
			return nil, NewSchemaError(m.Name, "", fmt.Sprintf("model %q redeclared", m.Name), nil)
		}
		seen[m.Name] = struct{}{}
	}
	diags, err := ResolveRelations(c, models)
	if err != nil {
		return nil, err
	}
	return &Graph{Config: c, Models: models, Diagnostics: diags}, nil
}

// Model returns the model with the given name.
func (g *Graph) Model(name string) (*load.Model, bool) {
	for _, m := range g.Models {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Edges returns every resolved relation endpoint, in model then member order.
func (g *Graph) Edges() []*Edge {
	var edges []*Edge
	for _, m := range g.Models {
		for _, mb := range m.Relations() {
			if !mb.Relation.Resolved() || mb.Relation.Error != "" {
				continue
			}
			related, ok := g.Model(mb.Relation.RelatedModel)
			if !ok {
				continue
			}
			edges = append(edges, &Edge{Owner: m, Member: mb, Related: related})
		}
	}
	return edges
}

// Errors scans all members and returns the relation errors they carry.
func (g *Graph) Errors() []*RelationError {
	var errs []*RelationError
	for _, m := range g.Models {
		for _, mb := range m.Relations() {
			if msg := mb.Relation.Error; msg != "" {
				errs = append(errs, NewRelationError(m.Name, mb.Name, mb.Relation.Name, msg))
			}
		}
	}
	return errs
}

// Validate returns a ValidationError listing every relation error of the
// graph, or nil if all relations were resolved. Generators must not emit
// code for a graph that fails validation.
func (g *Graph) Validate() error {
	errs := g.Errors()
	if len(errs) == 0 {
		return nil
	}
	return NewValidationError("", "", fmt.Sprintf("%d unresolved relation(s)", len(errs)), errs...)
}
