package gen

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/syssam/relgen/compiler/load"
	"github.com/syssam/relgen/schema/edge"
)

// endpoint locates one member inside the model set.
type endpoint struct {
	model  *load.Model
	member *load.Member
}

// resolver holds the state of one resolution pass.
type resolver struct {
	cfg    *Config
	log    *slog.Logger
	models []*load.Model
	diags  []*RelationError
}

// ResolveRelations pairs the members that declare the same relation name,
// infers the cardinality of both sides and links them to their related
// models. The models are mutated in place and traversed in model order,
// then member order. Members whose relation is already resolved are
// skipped, so running it twice is a no-op.
//
// A relation name that matches zero or more than two members is recorded
// on the member (Relation.Error) and returned as a RelationError without
// stopping the pass. A member type that does not name a known model is a
// structural defect and aborts the pass with a SchemaError.
//
// The caller must not run ResolveRelations concurrently on the same models.
func ResolveRelations(c *Config, models []*load.Model) ([]*RelationError, error) {
	if c == nil {
		c = MustNewConfig()
	}
	r := &resolver{cfg: c, log: c.logger(), models: models}
	err := r.resolve()
	return r.diags, err
}

func (r *resolver) resolve() error {
	for _, model := range r.models {
		for _, m := range model.Members {
			rel := m.Relation
			if rel == nil || rel.Resolved() {
				continue
			}
			cur := endpoint{model: model, member: m}
			partner, ok := r.partner(cur)
			if !ok {
				r.fail(cur, fmt.Sprintf("Unknown relation to '%s'", rel.Name))
				continue
			}
			// A third endpoint is searched outside the two models already
			// involved. Duplicates inside either of them are not detected.
			if _, ok := r.find(rel.Name, cur.model, partner.model); ok {
				r.fail(cur, fmt.Sprintf("Too many relation to '%s'", rel.Name))
				continue
			}
			rel.Type, partner.member.Relation.Type = edge.Between(m.IsMulti(), partner.member.IsMulti())
			if err := r.link(cur); err != nil {
				return err
			}
			if err := r.link(partner); err != nil {
				return err
			}
			r.log.Debug("relation resolved",
				"relation", rel.Name,
				"from", model.Name+"."+m.Name,
				"to", partner.model.Name+"."+partner.member.Name,
				"type", rel.Type.String(),
			)
		}
	}
	return nil
}

// partner returns the other endpoint of the relation declared by cur.
// Other models are searched first. If none declares the relation, another
// member of the same model is accepted, which makes self-relations work.
func (r *resolver) partner(cur endpoint) (endpoint, bool) {
	name := cur.member.Relation.Name
	if e, ok := r.find(name, cur.model); ok {
		return e, true
	}
	for _, m := range cur.model.Members {
		if m != cur.member && m.Relation != nil && m.Relation.Name == name {
			return endpoint{model: cur.model, member: m}, true
		}
	}
	return endpoint{}, false
}

// find returns the first member carrying the named relation
// that does not belong to one of the excluded models.
func (r *resolver) find(name string, exclude ...*load.Model) (endpoint, bool) {
	for _, model := range r.models {
		if slices.Contains(exclude, model) {
			continue
		}
		for _, m := range model.Members {
			if m.Relation != nil && m.Relation.Name == name {
				return endpoint{model: model, member: m}, true
			}
		}
	}
	return endpoint{}, false
}

// link sets the naming and the related model of a resolved endpoint.
func (r *resolver) link(e endpoint) error {
	rel := e.member.Relation
	name := e.member.TypeName()
	rel.InputName = e.model.Name + e.member.Name + name
	related := r.lookup(name)
	if related == nil {
		return &SchemaError{
			Type:     e.model.Name,
			Field:    e.member.Name,
			Relation: rel.Name,
			Message:  fmt.Sprintf("related model %q was not found", name),
		}
	}
	rel.RelatedModel = related.Name
	rel.CreateFromAnotherModel = r.cfg.IsCreatable(related.Name)
	rel.Error = ""
	return nil
}

func (r *resolver) lookup(name string) *load.Model {
	for _, m := range r.models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// fail records a diagnostic on the member and keeps the pass going.
func (r *resolver) fail(e endpoint, msg string) {
	e.member.Relation.Error = msg
	err := NewRelationError(e.model.Name, e.member.Name, e.member.Relation.Name, msg)
	r.diags = append(r.diags, err)
	r.log.Warn("relation not resolved",
		"model", e.model.Name,
		"member", e.member.Name,
		"relation", e.member.Relation.Name,
		"reason", msg,
	)
}
