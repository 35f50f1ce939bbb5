package merge

import (
	"errors"
	"flag"
	"fmt"

	"github.com/brimdata/rusttype/cli/inputflags"
	"github.com/brimdata/rusttype/cli/outputflags"
	"github.com/brimdata/rusttype/cmd/rusttype/root"
	"github.com/brimdata/rusttype/fuse"
	"github.com/brimdata/rusttype/pkg/charm"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var spec = &charm.Spec{
	Name:  "merge",
	Usage: "merge [options] file [file ...]",
	Short: "unify type trees into one",
	Long: `
The merge command reads every type tree from the given files (use "-" for
standard input) and unifies them, in order, into a single tree of which
each input is an instance.  The observed values of the inputs are
accumulated on the result.

Two trees unify only when they have the same shape: simple types must have
the same name, arrays the same fixed length (or none) and unifiable items,
and structs the same set of field names with unifiable field types.  Enums
always unify: each alternative of the second enum either replaces the
first compatible alternative of the first or is appended to it.

By default merge fails at the first tree that cannot be unified with the
trees before it.  With -k such trees are skipped and reported as warnings.`,
	New: New,
}

func init() {
	root.Rusttype.Add(spec)
}

type Command struct {
	*root.Command
	inputFlags  inputflags.Flags
	outputFlags outputflags.Flags
	keepGoing   bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.inputFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	f.BoolVar(&c.keepGoing, "k", false, "skip trees that cannot be unified instead of failing")
	return c, nil
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.inputFlags, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if len(args) == 0 {
		return errors.New("merge: at least one input file must be given")
	}
	logger := c.Logger.Named("merge")
	inputs, inputErr := c.inputFlags.Open(ctx, args)
	if inputErr != nil && len(inputs) == 0 {
		return inputErr
	}
	for _, err := range multierr.Errors(inputErr) {
		logger.Warn("Input skipped", zap.Error(err))
	}
	schema := fuse.NewSchema(logger.Named("fuse"))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := schema.MixinAll(input.Types, c.keepGoing)
		for _, err := range multierr.Errors(err) {
			if !c.keepGoing {
				return fmt.Errorf("%s: %w", input.Path, err)
			}
			logger.Warn("Type skipped", zap.String("path", input.Path), zap.Error(err))
		}
	}
	if schema.Type() == nil {
		return errors.New("merge: no types found in input")
	}
	logger.Info("Types merged", zap.Int("count", schema.Count()))
	return c.outputFlags.WriteTypes(schema.Type())
}
