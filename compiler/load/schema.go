// Package load reads schema definitions into the models consumed by the
// relation resolver.
package load

import (
	"strings"

	"github.com/syssam/relgen/schema/edge"
)

// Model represents a named schema entity that was loaded from a schema source.
type Model struct {
	Name    string    `json:"name" yaml:"name"`
	Pos     string    `json:"pos,omitempty" yaml:"pos,omitempty"`
	Members []*Member `json:"members,omitempty" yaml:"members,omitempty"`
}

// Member represents a field of a Model.
type Member struct {
	Name string `json:"name" yaml:"name"`
	// Type holds the declared type as written in the schema,
	// for example "[Post!]!" or "User".
	Type     string    `json:"type" yaml:"type"`
	Pos      string    `json:"pos,omitempty" yaml:"pos,omitempty"`
	Relation *Relation `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// Relation describes the participation of a Member in a named relation.
// Only Name is set by the loader, the remaining fields are filled in by
// the resolver.
type Relation struct {
	Name string `json:"name" yaml:"name"`
	// Type is edge.Unk until the relation is resolved.
	Type edge.Rel `json:"type" yaml:"type"`
	// RelatedModel holds the name of the model the member points to.
	RelatedModel           string `json:"relatedModel,omitempty" yaml:"relatedModel,omitempty"`
	InputName              string `json:"inputName,omitempty" yaml:"inputName,omitempty"`
	CreateFromAnotherModel bool   `json:"createFromAnotherModel" yaml:"createFromAnotherModel"`
	// Error holds the resolution diagnostic, if any.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Member returns the member with the given name.
func (m *Model) Member(name string) (*Member, bool) {
	for _, mb := range m.Members {
		if mb.Name == name {
			return mb, true
		}
	}
	return nil, false
}

// Relations returns the members that participate in a relation,
// in declaration order.
func (m *Model) Relations() []*Member {
	var rels []*Member
	for _, mb := range m.Members {
		if mb.HasRelation() {
			rels = append(rels, mb)
		}
	}
	return rels
}

// IsMulti reports whether the declared type is wrapped in a list.
func (m *Member) IsMulti() bool {
	t := strings.TrimSuffix(strings.TrimSpace(m.Type), "!")
	return strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]")
}

// TypeName returns the name of the type the member refers to, with list
// brackets and at most two non-null markers removed.
func (m *Member) TypeName() string {
	t := strings.NewReplacer("[", "", "]", "").Replace(m.Type)
	return strings.TrimSpace(strings.Replace(t, "!", "", 2))
}

// HasRelation reports whether the member is part of a relation.
func (m *Member) HasRelation() bool { return m.Relation != nil }

// Resolved reports whether the relation type was already inferred.
func (r *Relation) Resolved() bool { return r != nil && r.Type.Resolved() }
