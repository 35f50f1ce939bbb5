package rusttype

import "golang.org/x/exp/slices"

type fieldPair struct {
	a Field
	b Field
}

// orderFields pairs each field of first with the field of the same name
// in second, in the order of first.  It fails if the lists differ in
// length or if a name in first is missing from second.  When second
// holds the same name more than once, the earliest one is used.
func orderFields(first, second []Field) ([]fieldPair, bool) {
	if len(first) != len(second) {
		return nil, false
	}
	pairs := make([]fieldPair, 0, len(first))
	for _, f := range first {
		k := slices.IndexFunc(second, func(g Field) bool {
			return g.Name == f.Name
		})
		if k < 0 {
			return nil, false
		}
		pairs = append(pairs, fieldPair{f, second[k]})
	}
	return pairs, true
}
