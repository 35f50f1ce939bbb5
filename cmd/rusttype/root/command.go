package root

import (
	"context"
	"flag"

	"github.com/brimdata/rusttype/cli"
	"github.com/brimdata/rusttype/cli/logflags"
	"github.com/brimdata/rusttype/pkg/charm"
	"go.uber.org/zap"
)

var Rusttype = &charm.Spec{
	Name:  "rusttype",
	Usage: "rusttype <command> [options] [arguments...]",
	Short: "unify type trees inferred from data samples",
	Long: `
rusttype operates on type trees that describe the shape of observed data
samples.  Each tree is one of four shapes: a simple named type, an array of
a single item type (optionally of fixed length), an enum of alternative
types, or a struct of named fields.  Trees are read from and written to
YAML documents, one tree per document.

The "merge" command unifies a sequence of trees into the most specific
tree of which every sample is an instance, and the "equal" command reports
whether two trees have the same structure.`,
	New: New,
}

func init() {
	Rusttype.Add(charm.Help)
}

type Command struct {
	cli.Flags
	LogFlags logflags.Flags
	Logger   *zap.Logger
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	c.LogFlags.SetFlags(f)
	return c, nil
}

// Init initializes the shared flags along with all and opens the logger.
// The returned cleanup function must be called when the command is done.
func (c *Command) Init(all ...cli.Initializer) (context.Context, func(), error) {
	ctx, cleanup, err := c.Flags.Init(all...)
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.LogFlags.Open()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	c.Logger = logger
	return ctx, func() {
		logger.Sync()
		cleanup()
	}, nil
}

func (c *Command) Run(args []string) error {
	_, cancel, err := c.Init()
	if err != nil {
		return err
	}
	defer cancel()
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}
