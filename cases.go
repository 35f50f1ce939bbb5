package rusttype

import "golang.org/x/exp/slices"

// insertCase returns a copy of cases with typ folded in.  If some case
// merges with typ, the first such case is replaced by typ itself rather
// than by the result of the merge, so the replaced case's values and any
// generalization the merge would have produced are dropped.  Otherwise
// typ is appended.
//
// XXX The merge result is computed only as a compatibility probe.
// Keeping it instead of typ would accumulate values across enum cases;
// TestInsertCaseOverwrites pins the current behavior.
func insertCase(cases []*Type, typ *Type) []*Type {
	out := slices.Clone(cases)
	for k, c := range out {
		if _, ok := Merge(c, typ); ok {
			out[k] = typ
			return out
		}
	}
	return append(out, typ)
}
