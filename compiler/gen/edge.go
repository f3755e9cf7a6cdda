package gen

import (
	"fmt"

	"github.com/syssam/relgen/compiler/load"
	"github.com/syssam/relgen/schema/edge"
)

// Edge is one resolved endpoint of a relation, as seen from the model
// that declares it. It carries the names used by mutation generators.
type Edge struct {
	// Owner is the model that declares the member.
	Owner *load.Model
	// Member is the relation member.
	Member *load.Member
	// Related is the model the member points to.
	Related *load.Model
}

// Name returns the member name.
func (e Edge) Name() string { return e.Member.Name }

// Relation returns the relation name.
func (e Edge) Relation() string { return e.Member.Relation.Name }

// Rel returns the resolved cardinality of this side.
func (e Edge) Rel() edge.Rel { return e.Member.Relation.Type }

// Unique indicates if the member holds a single reference (O2O or M2O).
func (e Edge) Unique() bool {
	return e.Rel() == edge.O2O || e.Rel() == edge.M2O
}

// Creatable indicates if the related model may be created from this edge.
func (e Edge) Creatable() bool { return e.Member.Relation.CreateFromAnotherModel }

// InputName returns the derived mutation input name
// (owner name, member name and related name concatenated).
func (e Edge) InputName() string { return e.Member.Relation.InputName }

// CreateInputName returns the name of the nested create input type.
func (e Edge) CreateInputName() string { return e.InputName() + "CreateInput" }

// UpdateInputName returns the name of the nested update input type.
func (e Edge) UpdateInputName() string { return e.InputName() + "UpdateInput" }

// Constant returns the name of the generated constant holding the input name.
func (e Edge) Constant() string {
	return pascal(e.Owner.Name) + pascal(e.Member.Name) + "Input"
}

// StructField returns the struct member of the edge in a generated model.
func (e Edge) StructField() string { return pascal(e.Member.Name) }

// ConnectField returns the input field used to connect existing entities.
func (e Edge) ConnectField() string {
	if e.Unique() {
		return camel(e.Member.Name) + "Connect"
	}
	return camel(rules.Singularize(e.Member.Name)) + "Connects"
}

// MutationSet returns the method name for setting the edge id.
func (e Edge) MutationSet() (string, error) {
	if !e.Unique() {
		return "", fmt.Errorf("edge %q is not unique", e.Name())
	}
	return "Set" + pascal(e.Member.Name) + "ID", nil
}

// MutationAdd returns the method name for adding edge ids.
func (e Edge) MutationAdd() (string, error) {
	if e.Unique() {
		return "", fmt.Errorf("edge %q is unique", e.Name())
	}
	return "Add" + pascal(rules.Singularize(e.Member.Name)) + "IDs", nil
}

// MutationRemove returns the method name for removing edge ids.
func (e Edge) MutationRemove() (string, error) {
	if e.Unique() {
		return "", fmt.Errorf("edge %q is unique", e.Name())
	}
	return "Remove" + pascal(rules.Singularize(e.Member.Name)) + "IDs", nil
}

// MutationClear returns the method name for clearing the edge value.
func (e Edge) MutationClear() string {
	return "Clear" + pascal(e.Member.Name)
}

// Inverse returns the other endpoint of the relation.
func (e Edge) Inverse() (*Edge, bool) {
	for _, m := range e.Related.Relations() {
		if m != e.Member && m.Relation.Name == e.Relation() && m.Relation.RelatedModel == e.Owner.Name {
			return &Edge{Owner: e.Related, Member: m, Related: e.Owner}, true
		}
	}
	return nil, false
}

// String implements the fmt.Stringer interface.
func (e Edge) String() string {
	return fmt.Sprintf("%s.%s -[%s %s]-> %s", e.Owner.Name, e.Member.Name, e.Relation(), e.Rel().Short(), e.Related.Name)
}
