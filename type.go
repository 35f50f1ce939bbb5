// Package rusttype implements the type trees that are inferred from
// samples of semi-structured data along with the two recursive
// algorithms that operate on them: structural equality (Equal) and
// unification (Merge).  A tree describes the shape of a value as one of
// four shapes (Simple, Array, Enum, or Struct) and carries the literal
// sample values that were observed to produce it.
//
// Trees are immutable.  Merge always builds new nodes and never modifies
// its inputs, so a tree may be merged against many others and may be
// shared across goroutines.
package rusttype

import (
	"fmt"
	"strings"
)

// Variable is the Fixed length of an Array whose length is not fixed.
const Variable = -1

// A Type is one node of a type tree: a shape together with the literal
// values observed for it.  Values are carried for provenance only and
// never take part in equality or compatibility decisions.
type Type struct {
	Shape  Shape
	Values []string
}

// Shape is implemented by Simple, Array, Enum, and Struct.
type Shape interface {
	shape()
	String() string
}

type Simple struct {
	Name string
}

// Array is a homogeneous sequence of Item.  If Fixed is not Variable,
// the array has exactly Fixed elements.
type Array struct {
	Item  *Type
	Fixed int
}

// Enum is one of several alternative shapes.  The order of Cases is not
// meaningful but is preserved.
type Enum struct {
	Cases []*Type
}

// Struct is a set of named fields.  Field order is not meaningful and
// field names are unique.
type Struct struct {
	Fields []Field
}

type Field struct {
	Name string
	Type *Type
}

func (*Simple) shape() {}
func (*Array) shape()  {}
func (*Enum) shape()   {}
func (*Struct) shape() {}

func NewSimple(name string, values ...string) *Type {
	return &Type{Shape: &Simple{Name: name}, Values: values}
}

func NewArray(item *Type, fixed int, values ...string) *Type {
	return &Type{Shape: &Array{Item: item, Fixed: fixed}, Values: values}
}

func NewEnum(cases []*Type, values ...string) *Type {
	return &Type{Shape: &Enum{Cases: cases}, Values: values}
}

func NewStruct(fields []Field, values ...string) *Type {
	return &Type{Shape: &Struct{Fields: fields}, Values: values}
}

// Kind returns the name of t's shape: "simple", "array", "enum", or
// "struct".
func (t *Type) Kind() string {
	return KindOf(t.Shape)
}

func KindOf(s Shape) string {
	switch s.(type) {
	case *Simple:
		return "simple"
	case *Array:
		return "array"
	case *Enum:
		return "enum"
	case *Struct:
		return "struct"
	}
	panic(fmt.Sprintf("rusttype: unknown shape %T", s))
}

func (t *Type) String() string {
	return t.Shape.String()
}

func (s *Simple) String() string {
	return s.Name
}

func (a *Array) String() string {
	if a.Fixed == Variable {
		return fmt.Sprintf("[%s]", a.Item)
	}
	return fmt.Sprintf("[%s;%d]", a.Item, a.Fixed)
}

func (e *Enum) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for k, c := range e.Cases {
		if k > 0 {
			b.WriteByte('|')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (s *Struct) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for k, f := range s.Fields {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Name)
		b.WriteByte(':')
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}
