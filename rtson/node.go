// Package rtson implements the document form of type trees.  A tree is
// written as a YAML mapping with a kind key (simple, array, enum, or
// struct), the payload for that kind, and the optional list of observed
// values.  Because YAML is a superset of JSON, a JSON object with the same
// keys is also a valid document.
//
//	kind: struct
//	values: ['{"id":1}']
//	fields:
//	  - name: id
//	    type: {kind: simple, name: i64, values: ["1"]}
//	  - name: pair
//	    type: {kind: array, fixed: 2, item: {kind: simple, name: f64}}
package rtson

import (
	"fmt"

	"github.com/brimdata/rusttype"
	zqe "github.com/brimdata/rusttype/errors"
)

type node struct {
	Kind   string      `yaml:"kind"`
	Name   string      `yaml:"name,omitempty"`
	Fixed  *int        `yaml:"fixed,omitempty"`
	Item   *node       `yaml:"item,omitempty"`
	Cases  []*node     `yaml:"cases,omitempty"`
	Fields []fieldNode `yaml:"fields,omitempty"`
	Values []string    `yaml:"values,omitempty,flow"`
}

type fieldNode struct {
	Name string `yaml:"name"`
	Type *node  `yaml:"type"`
}

func encode(t *rusttype.Type) *node {
	n := &node{Kind: t.Kind(), Values: t.Values}
	switch s := t.Shape.(type) {
	case *rusttype.Simple:
		n.Name = s.Name
	case *rusttype.Array:
		if s.Fixed != rusttype.Variable {
			fixed := s.Fixed
			n.Fixed = &fixed
		}
		n.Item = encode(s.Item)
	case *rusttype.Enum:
		for _, c := range s.Cases {
			n.Cases = append(n.Cases, encode(c))
		}
	case *rusttype.Struct:
		for _, f := range s.Fields {
			n.Fields = append(n.Fields, fieldNode{Name: f.Name, Type: encode(f.Type)})
		}
	}
	return n
}

func decode(n *node, path string) (*rusttype.Type, error) {
	if n == nil {
		return nil, zqe.E(zqe.Invalid, "%s: missing type", path)
	}
	if n.Kind == "" {
		return nil, zqe.E(zqe.Invalid, "%s: missing kind", path)
	}
	if err := n.checkKeys(path); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "simple":
		if n.Name == "" {
			return nil, zqe.E(zqe.Invalid, "%s: simple type has no name", path)
		}
		return rusttype.NewSimple(n.Name, n.Values...), nil
	case "array":
		item, err := decode(n.Item, path+".item")
		if err != nil {
			return nil, err
		}
		fixed := rusttype.Variable
		if n.Fixed != nil {
			if *n.Fixed < 0 {
				return nil, zqe.E(zqe.Invalid, "%s: negative fixed length %d", path, *n.Fixed)
			}
			fixed = *n.Fixed
		}
		return rusttype.NewArray(item, fixed, n.Values...), nil
	case "enum":
		cases := make([]*rusttype.Type, 0, len(n.Cases))
		for k, c := range n.Cases {
			typ, err := decode(c, fmt.Sprintf("%s.cases[%d]", path, k))
			if err != nil {
				return nil, err
			}
			cases = append(cases, typ)
		}
		return rusttype.NewEnum(cases, n.Values...), nil
	case "struct":
		fields := make([]rusttype.Field, 0, len(n.Fields))
		seen := make(map[string]struct{}, len(n.Fields))
		for k, f := range n.Fields {
			fpath := fmt.Sprintf("%s.fields[%d]", path, k)
			if f.Name == "" {
				return nil, zqe.E(zqe.Invalid, "%s: field has no name", fpath)
			}
			if _, ok := seen[f.Name]; ok {
				return nil, zqe.E(zqe.Invalid, "%s: duplicate field %q", fpath, f.Name)
			}
			seen[f.Name] = struct{}{}
			typ, err := decode(f.Type, fpath+".type")
			if err != nil {
				return nil, err
			}
			fields = append(fields, rusttype.Field{Name: f.Name, Type: typ})
		}
		return rusttype.NewStruct(fields, n.Values...), nil
	}
	return nil, zqe.E(zqe.Invalid, "%s: unknown kind %q", path, n.Kind)
}

// checkKeys rejects payload keys that belong to a different kind, e.g.,
// an item on a struct, which would otherwise be silently dropped.
func (n *node) checkKeys(path string) error {
	var key string
	switch {
	case n.Name != "" && n.Kind != "simple":
		key = "name"
	case n.Fixed != nil && n.Kind != "array":
		key = "fixed"
	case n.Item != nil && n.Kind != "array":
		key = "item"
	case n.Cases != nil && n.Kind != "enum":
		key = "cases"
	case n.Fields != nil && n.Kind != "struct":
		key = "fields"
	default:
		return nil
	}
	return zqe.E(zqe.Invalid, "%s: %q not allowed for kind %q", path, key, n.Kind)
}
