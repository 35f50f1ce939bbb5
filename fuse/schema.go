// Package fuse folds a sequence of type trees, one per observed sample,
// into a single generalized tree.
package fuse

import (
	"fmt"

	"github.com/brimdata/rusttype"
	zqe "github.com/brimdata/rusttype/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Schema constructs a fused type for types passed to Mixin.  Each sample
// is an instance of the fused type.
type Schema struct {
	logger *zap.Logger
	typ    *rusttype.Type
	count  int
}

func NewSchema(logger *zap.Logger) *Schema {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Schema{logger: logger}
}

// Mixin merges t into the fused type.  If t cannot be unified with the
// fused type, Mixin returns an error of kind zqe.Incompatible and the
// fused type is unchanged.
func (s *Schema) Mixin(t *rusttype.Type) error {
	if s.typ == nil {
		s.typ = t
		s.count = 1
		s.logger.Debug("Schema initialized", zap.Stringer("type", t))
		return nil
	}
	typ, ok := rusttype.Merge(s.typ, t)
	if !ok {
		s.logger.Debug("Sample rejected",
			zap.Int("count", s.count),
			zap.Stringer("schema", s.typ),
			zap.Stringer("type", t))
		return zqe.E(zqe.Incompatible, "cannot merge %s into %s", t, s.typ)
	}
	s.typ = typ
	s.count++
	s.logger.Debug("Sample merged", zap.Int("count", s.count), zap.Stringer("type", typ))
	return nil
}

// MixinAll mixes in each of types in order.  If keepGoing is false,
// MixinAll stops at the first incompatible type and returns its error.
// Otherwise incompatible types are skipped and their errors combined.
func (s *Schema) MixinAll(types []*rusttype.Type, keepGoing bool) error {
	var errs error
	for k, t := range types {
		if err := s.Mixin(t); err != nil {
			err = fmt.Errorf("sample %d: %w", k, err)
			if !keepGoing {
				return err
			}
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Type returns the fused type or nil if nothing has been mixed in.
func (s *Schema) Type() *rusttype.Type {
	return s.typ
}

// Count returns the number of types merged into the fused type.
func (s *Schema) Count() int {
	return s.count
}

// Fuse returns the unification of types or an error if any two of them
// are incompatible.
func Fuse(types []*rusttype.Type, logger *zap.Logger) (*rusttype.Type, error) {
	s := NewSchema(logger)
	if err := s.MixinAll(types, false); err != nil {
		return nil, err
	}
	return s.Type(), nil
}
