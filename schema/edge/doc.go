// Package edge defines the cardinality of a relation between two schema models.
//
// A relation is declared on exactly two members, one on each side. The
// cardinality of each side is inferred from the shape of the declared
// member types: a list-wrapped type is the "many" side.
//
//	type User {
//	    posts: [Post] @relation(name: "authorOf")  # O2M
//	}
//
//	type Post {
//	    author: User @relation(name: "authorOf")   # M2O
//	}
//
// The two sides always carry complementary values, see [Rel.Inverse].
//
// # Cardinalities
//
//   - O2O: one to one, neither side is a list
//   - O2M: one to many, this side is a list, the other is not
//   - M2O: many to one, the other side is a list, this one is not
//   - M2M: many to many, both sides are lists
//
// Values encode as ONE_TO_ONE, ONE_TO_MANY, MANY_TO_ONE and MANY_TO_MANY
// in JSON, YAML and any other encoding built on encoding.TextMarshaler.
package edge
