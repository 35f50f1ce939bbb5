package equal

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/rusttype"
	"github.com/brimdata/rusttype/cmd/rusttype/root"
	"github.com/brimdata/rusttype/pkg/charm"
	"github.com/brimdata/rusttype/pkg/terminal"
	"github.com/brimdata/rusttype/pkg/terminal/color"
	"github.com/brimdata/rusttype/rtson"
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "equal",
	Usage: "equal [-d] [-color=false] file1 file2",
	Short: "compare the structure of two type trees",
	Long: `
The equal command reads the first type tree from each of two files and
reports whether they have the same structure, printing "equal" or
"not equal".  Observed values are ignored and struct fields may appear in
any order.  Enum alternatives are matched loosely: the enums must have the
same number of alternatives and each alternative of the first must equal
some alternative of the second.

With -d, a unified diff of the two trees is printed when they differ.
The diff is colorized when standard output is a terminal unless
-color=false is given.
The command exits with an error when the trees are not equal.`,
	New: New,
}

func init() {
	root.Rusttype.Add(spec)
}

var ErrNotEqual = errors.New("types are not equal")

type Command struct {
	*root.Command
	diff   bool
	color  bool
	stdout io.Writer
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command), stdout: os.Stdout}
	f.BoolVar(&c.diff, "d", false, "print a unified diff when the types differ")
	f.BoolVar(&c.color, "color", true, "enable/disable color formatting for terminal output")
	return c, nil
}

func (c *Command) Run(args []string) error {
	_, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) != 2 {
		return errors.New("equal: two files must be given")
	}
	a, err := readFirst(args[0])
	if err != nil {
		return err
	}
	b, err := readFirst(args[1])
	if err != nil {
		return err
	}
	if rusttype.Equal(a, b) {
		fmt.Fprintln(c.stdout, "equal")
		return nil
	}
	c.Logger.Named("equal").Debug("Types differ", zap.Stringer("a", a), zap.Stringer("b", b))
	fmt.Fprintln(c.stdout, "not equal")
	if c.diff {
		color.Enabled = c.color && terminal.IsTerminal(os.Stdout)
		d, err := Diff(args[0], a, args[1], b)
		if err != nil {
			return err
		}
		fmt.Fprint(c.stdout, d)
	}
	return ErrNotEqual
}

func readFirst(path string) (*rusttype.Type, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	typ, err := rtson.NewReader(r).Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if typ == nil {
		return nil, fmt.Errorf("%s: no type found", path)
	}
	return typ, nil
}

// Diff returns a unified diff of the YAML forms of a and b without their
// values, with added and removed lines colored if color is enabled.
func Diff(aName string, a *rusttype.Type, bName string, b *rusttype.Type) (string, error) {
	aText, err := rtson.Marshal(rusttype.StripValues(a))
	if err != nil {
		return "", err
	}
	bText, err := rtson.Marshal(rusttype.StripValues(b))
	if err != nil {
		return "", err
	}
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(aText)),
		B:        difflib.SplitLines(string(bText)),
		FromFile: aName,
		ToFile:   bName,
		Context:  3,
	})
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for _, line := range difflib.SplitLines(d) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			out.WriteString(line)
		case strings.HasPrefix(line, "+"):
			out.WriteString(color.Green.Colorize(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "-"):
			out.WriteString(color.Red.Colorize(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "@@"):
			out.WriteString(color.Cyan.Colorize(strings.TrimSuffix(line, "\n")) + "\n")
		default:
			out.WriteString(line)
		}
	}
	return out.String(), nil
}
