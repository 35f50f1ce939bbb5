package charm

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rootCommand struct {
	verbose bool
}

func (*rootCommand) Run(args []string) error {
	if len(args) == 0 {
		return NeedHelp
	}
	return ErrNoRun
}

type leafCommand struct {
	parent *rootCommand
	format string
	args   []string
}

func (c *leafCommand) Run(args []string) error {
	c.args = args
	return nil
}

func testSpecs() (*Spec, *leafCommand) {
	leaf := &leafCommand{}
	root := &Spec{
		Name:  "root",
		Usage: "root [options] command",
		Short: "test root",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			c := &rootCommand{}
			f.BoolVar(&c.verbose, "v", false, "verbose")
			return c, nil
		},
	}
	root.Add(&Spec{
		Name:  "leaf",
		Usage: "leaf [-f format] file...",
		Short: "test leaf",
		Long:  "Leaf does nothing.",
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			leaf.parent = parent.(*rootCommand)
			f.StringVar(&leaf.format, "f", "yaml", "format")
			return leaf, nil
		},
	})
	root.Add(&Spec{
		Name:   "secret",
		Short:  "hidden leaf",
		Hidden: true,
		New: func(parent Command, f *flag.FlagSet) (Command, error) {
			return &leafCommand{}, nil
		},
	})
	return root, leaf
}

func TestExecRoot(t *testing.T) {
	root, leaf := testSpecs()
	err := root.ExecRoot([]string{"-v", "leaf", "-f", "text", "a", "b"})
	require.NoError(t, err)
	assert.True(t, leaf.parent.verbose)
	assert.Equal(t, "text", leaf.format)
	assert.Equal(t, []string{"a", "b"}, leaf.args)
}

func TestNoSuchSubcommand(t *testing.T) {
	root, _ := testSpecs()
	err := root.ExecRoot([]string{"bogus"})
	assert.EqualError(t, err, `"root": no such sub-command "bogus": options are: leaf`)
}

func TestBadFlag(t *testing.T) {
	root, _ := testSpecs()
	err := root.ExecRoot([]string{"leaf", "-x"})
	assert.EqualError(t, err, "root leaf: flag provided but not defined: -x")
}

func TestDisplayHelp(t *testing.T) {
	root, _ := testSpecs()
	p, err := parseHelp(root, []string{"leaf"})
	require.NoError(t, err)
	require.Len(t, p, 2)
	var buf bytes.Buffer
	displayHelp(&buf, p, false)
	out := buf.String()
	assert.Contains(t, out, "root leaf - test leaf")
	assert.Contains(t, out, `-f format (default "yaml")`)
	assert.Contains(t, out, "Leaf does nothing.")

	p, err = parseHelp(root, nil)
	require.NoError(t, err)
	buf.Reset()
	displayHelp(&buf, p, false)
	assert.Contains(t, buf.String(), "leaf - test leaf")
	assert.NotContains(t, buf.String(), "secret")
	buf.Reset()
	displayHelp(&buf, p, true)
	assert.Contains(t, buf.String(), "[secret] - hidden leaf")
}

func TestFlagMap(t *testing.T) {
	assert.Equal(t, map[string]bool{"a": true, "b": true}, flagMap("a, b"))
	assert.Empty(t, flagMap(""))
}
