// Package zqe provides a mechanism to create or wrap errors with a Kind
// so that callers of the type fuser can tell an incompatible sample
// apart from a malformed document or an I/O failure.
package zqe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// A Kind represents a class of error.
type Kind int

const (
	Other Kind = iota
	// Invalid marks a type document that does not describe a
	// well-formed type tree.
	Invalid
	// Incompatible marks two type trees that cannot be unified.
	Incompatible
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid type"
	case Incompatible:
		return "incompatible types"
	}
	return "unknown error kind"
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var parts []string
	if e.Kind != Other {
		parts = append(parts, e.Kind.String())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "no error"
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns just the Err.Error() string, if present, or the Kind
// string description.
func (e *Error) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != Other {
		return e.Kind.String()
	}
	return "no error"
}

// E generates an error from any mix of:
//   - a Kind
//   - an existing error
//   - a string and optional formatting verbs, like fmt.Errorf (including
//     support for the %w verb).
//
// The string and format verbs must be last in the arguments, if present.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args to zqe.E")
	}
	e := &Error{}
	for i, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case string:
			e.Err = fmt.Errorf(arg, args[i+1:]...)
			return e
		default:
			_, file, line, _ := runtime.Caller(1)
			return fmt.Errorf("unknown type %T value %v in zqe.E call at %v:%v", arg, arg, file, line)
		}
	}
	return e
}

// KindOf returns the first Kind other than Other found in err's chain.
func KindOf(err error) Kind {
	for err != nil {
		var zerr *Error
		if !errors.As(err, &zerr) {
			break
		}
		if zerr.Kind != Other {
			return zerr.Kind
		}
		err = zerr.Err
	}
	return Other
}

func IsIncompatible(err error) bool {
	return KindOf(err) == Incompatible
}

func IsInvalid(err error) bool {
	return KindOf(err) == Invalid
}
