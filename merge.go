package rusttype

import (
	"golang.org/x/exp/slices"
)

// Merge unifies a and b into the most specific type tree of which both
// are instances.  The result's values are those of a followed by those
// of b.  If a and b (or any pair of subtrees that must unify) have
// different shapes, Merge returns false.  Enums never fail to merge:
// incompatible cases are appended as new alternatives.
//
// Neither a nor b is modified and the result shares no Values slice
// with either input.
func Merge(a, b *Type) (*Type, bool) {
	shape, ok := mergeShape(a.Shape, b.Shape)
	if !ok {
		return nil, false
	}
	values := make([]string, 0, len(a.Values)+len(b.Values))
	values = append(values, a.Values...)
	values = append(values, b.Values...)
	return &Type{Shape: shape, Values: values}, true
}

func mergeShape(a, b Shape) (Shape, bool) {
	switch a := a.(type) {
	case *Simple:
		if b, ok := b.(*Simple); ok && a.Name == b.Name {
			return a, true
		}
	case *Array:
		if b, ok := b.(*Array); ok {
			return mergeArray(a, b)
		}
	case *Enum:
		if b, ok := b.(*Enum); ok {
			return mergeEnum(a, b), true
		}
	case *Struct:
		if b, ok := b.(*Struct); ok {
			return mergeStruct(a, b)
		}
	}
	return nil, false
}

func mergeArray(a, b *Array) (Shape, bool) {
	if a.Fixed != b.Fixed {
		return nil, false
	}
	item, ok := Merge(a.Item, b.Item)
	if !ok {
		return nil, false
	}
	return &Array{Item: item, Fixed: a.Fixed}, true
}

func mergeEnum(a, b *Enum) *Enum {
	cases := slices.Clone(a.Cases)
	for _, c := range b.Cases {
		cases = insertCase(cases, c)
	}
	return &Enum{Cases: cases}
}

func mergeStruct(a, b *Struct) (Shape, bool) {
	pairs, ok := orderFields(a.Fields, b.Fields)
	if !ok {
		return nil, false
	}
	fields := make([]Field, 0, len(pairs))
	for _, p := range pairs {
		typ, ok := Merge(p.a.Type, p.b.Type)
		if !ok {
			return nil, false
		}
		fields = append(fields, Field{Name: p.a.Name, Type: typ})
	}
	return &Struct{Fields: fields}, true
}
