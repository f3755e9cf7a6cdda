// Package gen resolves the relations declared between schema models and
// writes the artifacts derived from them.
//
// A relation is declared on exactly two members, usually on two different
// models, sharing the same relation name:
//
//	type User {
//	    posts: [Post] @relation(name: "authorOf")
//	}
//
//	type Post {
//	    author: User @relation(name: "authorOf")
//	}
//
// # Resolution
//
// ResolveRelations pairs both endpoints, infers their cardinality from the
// member types (a list-wrapped type is the "many" side), links each side to
// its related model and derives the mutation input name
// (owner + member + related, e.g. "PostauthorUser").
//
// Two kinds of errors exist:
//
//   - RelationError: the relation name matched zero or more than two
//     members. It is recorded on the member and the pass continues.
//   - SchemaError: a member type names no known model. The pass stops.
//
// Example:
//
//	graph, err := gen.NewGraph(config, models...)
//	if err != nil {
//	    return err // structural error
//	}
//	if err := graph.Validate(); err != nil {
//	    return err // every unresolved relation, at once
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./relations"),
//	    gen.WithExtraNonCreatable("Credential"),
//	    gen.WithFormat("yaml"),
//	)
//
// Models listed in Config.NonCreatable (User and File by default) are
// never created transitively from a relation of another model.
//
// # Generated Output
//
//	{target}/
//	├── relations.{json,yaml,msgpack}  // resolved models, diagnostics, stats
//	└── relations.go                   // input name constants
package gen
