package rusttype

// StripValues returns a copy of t with the values of every node removed.
func StripValues(t *Type) *Type {
	switch s := t.Shape.(type) {
	case *Array:
		return NewArray(StripValues(s.Item), s.Fixed)
	case *Enum:
		cases := make([]*Type, 0, len(s.Cases))
		for _, c := range s.Cases {
			cases = append(cases, StripValues(c))
		}
		return NewEnum(cases)
	case *Struct:
		fields := make([]Field, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, Field{Name: f.Name, Type: StripValues(f.Type)})
		}
		return NewStruct(fields)
	}
	return &Type{Shape: t.Shape}
}

// CountValues returns the number of values carried by t and all of its
// descendants.
func CountValues(t *Type) int {
	n := len(t.Values)
	switch s := t.Shape.(type) {
	case *Array:
		n += CountValues(s.Item)
	case *Enum:
		for _, c := range s.Cases {
			n += CountValues(c)
		}
	case *Struct:
		for _, f := range s.Fields {
			n += CountValues(f.Type)
		}
	}
	return n
}
