package rusttype

// Equal reports whether a and b have the same structure.  Struct fields
// are compared by name regardless of order and values are ignored.
//
// Enum cases match existentially: each case of a must equal some case
// of b and the two enums must have the same number of cases, but cases
// are not paired one-to-one.  Consequently (A|A|B) equals (A|B|B).
func Equal(a, b *Type) bool {
	switch a := a.Shape.(type) {
	case *Simple:
		b, ok := b.Shape.(*Simple)
		return ok && a.Name == b.Name
	case *Array:
		b, ok := b.Shape.(*Array)
		return ok && a.Fixed == b.Fixed && Equal(a.Item, b.Item)
	case *Enum:
		b, ok := b.Shape.(*Enum)
		return ok && equalEnum(a, b)
	case *Struct:
		b, ok := b.Shape.(*Struct)
		return ok && equalStruct(a, b)
	}
	return false
}

func equalEnum(a, b *Enum) bool {
	if len(a.Cases) != len(b.Cases) {
		return false
	}
	for _, c := range a.Cases {
		if !hasEqual(b.Cases, c) {
			return false
		}
	}
	return true
}

func hasEqual(cases []*Type, typ *Type) bool {
	for _, c := range cases {
		if Equal(c, typ) {
			return true
		}
	}
	return false
}

func equalStruct(a, b *Struct) bool {
	pairs, ok := orderFields(a.Fields, b.Fields)
	if !ok {
		return false
	}
	for _, p := range pairs {
		if !Equal(p.a.Type, p.b.Type) {
			return false
		}
	}
	return true
}
