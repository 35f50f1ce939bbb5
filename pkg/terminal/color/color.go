// Package color wraps text in ANSI color escapes.
package color

import "fmt"

// Enabled turns escapes on and off.  Commands set it from whether their
// output is a terminal.
var Enabled = false

type Code int

const (
	Reset Code = 0
	Red   Code = 31
	Green Code = 32
	Cyan  Code = 36
)

func (c Code) String() string {
	return fmt.Sprintf("\033[%dm", int(c))
}

// Colorize returns s wrapped in c and Reset if Enabled, or s otherwise.
func (c Code) Colorize(s string) string {
	if !Enabled {
		return s
	}
	return c.String() + s + Reset.String()
}
