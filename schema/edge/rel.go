package edge

import "fmt"

// Rel is the relation type (cardinality) of one side of a relation.
type Rel int

// Relation types.
const (
	Unk Rel = iota // Unknown, not resolved yet.
	O2O            // One to one.
	O2M            // One to many.
	M2O            // Many to one (inverse perspective for O2M).
	M2M            // Many to many.
)

var relNames = [...]string{
	Unk: "UNKNOWN",
	O2O: "ONE_TO_ONE",
	O2M: "ONE_TO_MANY",
	M2O: "MANY_TO_ONE",
	M2M: "MANY_TO_MANY",
}

// String returns the relation name.
func (r Rel) String() string {
	if r < Unk || int(r) >= len(relNames) {
		return relNames[Unk]
	}
	return relNames[r]
}

// Short returns the abbreviated relation name (e.g. "O2M").
func (r Rel) Short() string {
	switch r {
	case O2O:
		return "O2O"
	case O2M:
		return "O2M"
	case M2O:
		return "M2O"
	case M2M:
		return "M2M"
	}
	return "Unknown"
}

// Inverse returns the relation type of the other side.
func (r Rel) Inverse() Rel {
	switch r {
	case O2M:
		return M2O
	case M2O:
		return O2M
	}
	return r
}

// Resolved reports whether r holds a known relation type.
func (r Rel) Resolved() bool { return r > Unk && int(r) < len(relNames) }

// Between returns the relation types of both sides of a relation given
// whether each side is declared as a list. The first value belongs to the
// current side, the second to its partner. The list side holds the "many"
// end, so it reads as O2M from its owner's perspective.
func Between(currentMulti, partnerMulti bool) (Rel, Rel) {
	switch {
	case currentMulti && partnerMulti:
		return M2M, M2M
	case !currentMulti && !partnerMulti:
		return O2O, O2O
	case currentMulti:
		return O2M, M2O
	default:
		return M2O, O2M
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (r Rel) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (r *Rel) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range relNames {
		if name == s {
			*r = Rel(i)
			return nil
		}
	}
	if s == "" {
		*r = Unk
		return nil
	}
	for _, v := range []Rel{O2O, O2M, M2O, M2M} {
		if v.Short() == s {
			*r = v
			return nil
		}
	}
	return fmt.Errorf("edge: invalid relation type %q", s)
}
