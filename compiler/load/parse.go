package load

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// RelationDirective is the SDL declaration of the directive that marks
// a field as one endpoint of a named relation.
const RelationDirective = `directive @relation(name: String!) on FIELD_DEFINITION`

// DirectiveName is the name of the relation directive.
const DirectiveName = "relation"

// ParseSchema parses the given GraphQL SDL sources and returns their
// object types as models, in declaration order. Root operation types are
// skipped. The schema is not validated, references to unknown types are
// reported later by the resolver.
func ParseSchema(sources ...*ast.Source) ([]*Model, error) {
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, fmt.Errorf("load: parse schema: %w", err)
	}
	roots := rootTypes(doc)
	var (
		models []*Model
		byName = make(map[string]*Model)
	)
	for _, def := range doc.Definitions {
		if def.Kind != ast.Object || roots[def.Name] {
			continue
		}
		if prev, ok := byName[def.Name]; ok {
			return nil, fmt.Errorf("load: type %q redeclared at %s (previous declaration at %s)", def.Name, position(def.Position), prev.Pos)
		}
		m := &Model{Name: def.Name, Pos: position(def.Position)}
		if err := m.addFields(def.Fields); err != nil {
			return nil, err
		}
		byName[m.Name] = m
		models = append(models, m)
	}
	for _, ext := range doc.Extensions {
		if ext.Kind != ast.Object || roots[ext.Name] {
			continue
		}
		m, ok := byName[ext.Name]
		if !ok {
			return nil, fmt.Errorf("load: extension of unknown type %q at %s", ext.Name, position(ext.Position))
		}
		if err := m.addFields(ext.Fields); err != nil {
			return nil, err
		}
	}
	return models, nil
}

// ParseString is a convenience wrapper around ParseSchema for a single
// inline source.
func ParseString(name, sdl string) ([]*Model, error) {
	return ParseSchema(&ast.Source{Name: name, Input: sdl})
}

func (m *Model) addFields(fields ast.FieldList) error {
	for _, f := range fields {
		if _, ok := m.Member(f.Name); ok {
			return fmt.Errorf("load: field %q redeclared for type %q at %s", f.Name, m.Name, position(f.Position))
		}
		mb := &Member{
			Name: f.Name,
			Type: f.Type.String(),
			Pos:  position(f.Position),
		}
		rel, err := relation(f)
		if err != nil {
			return fmt.Errorf("load: type %q field %q: %w", m.Name, f.Name, err)
		}
		mb.Relation = rel
		m.Members = append(m.Members, mb)
	}
	return nil
}

// relation extracts the relation name from the field directives.
func relation(f *ast.FieldDefinition) (*Relation, error) {
	d := f.Directives.ForName(DirectiveName)
	if d == nil {
		return nil, nil
	}
	arg := d.Arguments.ForName("name")
	switch {
	case arg == nil || arg.Value == nil:
		return nil, fmt.Errorf("@%s directive requires a name argument", DirectiveName)
	case arg.Value.Kind != ast.StringValue:
		return nil, fmt.Errorf("@%s name must be a string, got %s", DirectiveName, arg.Value.String())
	case arg.Value.Raw == "":
		return nil, fmt.Errorf("@%s name cannot be empty", DirectiveName)
	}
	return &Relation{Name: arg.Value.Raw}, nil
}

// rootTypes returns the names of the root operation types. The defaults
// apply when no schema definition is present.
func rootTypes(doc *ast.SchemaDocument) map[string]bool {
	roots := make(map[string]bool)
	for _, list := range []ast.SchemaDefinitionList{doc.Schema, doc.SchemaExtension} {
		for _, sd := range list {
			for _, op := range sd.OperationTypes {
				roots[op.Type] = true
			}
		}
	}
	if len(roots) == 0 {
		for _, name := range []string{"Query", "Mutation", "Subscription"} {
			roots[name] = true
		}
	}
	return roots
}

func position(p *ast.Position) string {
	if p == nil {
		return ""
	}
	if p.Src != nil && p.Src.Name != "" {
		return fmt.Sprintf("%s:%d", p.Src.Name, p.Line)
	}
	return fmt.Sprintf("line %d", p.Line)
}
