package gen

import (
	"fmt"
	"slices"

	"github.com/dave/jennifer/jen"
)

// GenerateConstants builds a Go file that exposes the resolved relation
// naming to hand-written code: one constant per relation input name, the
// cardinality of every endpoint and the models that cannot be created from
// a relation. It fails if the graph does not validate.
func GenerateConstants(g *Graph) (*jen.File, error) {
	if err := g.Validate(); err != nil {
		return nil, NewGenerationError("constants", "", "schema has unresolved relations", err)
	}
	edges := g.Edges()
	if err := checkNames(edges); err != nil {
		return nil, err
	}

	f := jen.NewFile(g.PackageName())
	f.HeaderComment(g.header())
	f.PackageComment(fmt.Sprintf("Package %s holds the relation names of the schema.", g.PackageName()))

	if len(edges) > 0 {
		defs := make([]jen.Code, 0, 2*len(edges))
		for _, e := range edges {
			defs = append(defs,
				jen.Commentf("%s is the input name of %s.%s (relation %q, %s).", e.Constant(), e.Owner.Name, e.Member.Name, e.Relation(), e.Rel()),
				jen.Id(e.Constant()).Op("=").Lit(e.InputName()),
			)
		}
		f.Comment("Relation input names.")
		f.Const().Defs(defs...)
	}

	f.Comment("Relations maps the input name of each relation endpoint to its cardinality.")
	f.Var().Id("Relations").Op("=").Map(jen.String()).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, e := range edges {
			d[jen.Lit(e.InputName())] = jen.Lit(e.Rel().String())
		}
	}))

	f.Comment("NonCreatable lists the models that cannot be created from a relation of another model.")
	nc := slices.Sorted(slices.Values(g.NonCreatable))
	f.Var().Id("NonCreatable").Op("=").Map(jen.String()).Bool().Values(jen.DictFunc(func(d jen.Dict) {
		for _, name := range nc {
			d[jen.Lit(name)] = jen.True()
		}
	}))
	return f, nil
}

// checkNames rejects graphs whose derived names collide in generated code.
func checkNames(edges []*Edge) error {
	consts := make(map[string]*Edge, len(edges))
	inputs := make(map[string]*Edge, len(edges))
	for _, e := range edges {
		if prev, ok := consts[e.Constant()]; ok {
			return NewGenerationError("constants", "", fmt.Sprintf("constant %s is derived from both %s.%s and %s.%s", e.Constant(), prev.Owner.Name, prev.Member.Name, e.Owner.Name, e.Member.Name), nil)
		}
		if prev, ok := inputs[e.InputName()]; ok {
			return NewGenerationError("constants", "", fmt.Sprintf("input name %s is derived from both %s.%s and %s.%s", e.InputName(), prev.Owner.Name, prev.Member.Name, e.Owner.Name, e.Member.Name), nil)
		}
		consts[e.Constant()] = e
		inputs[e.InputName()] = e
	}
	return nil
}
