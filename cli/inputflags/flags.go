package inputflags

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/brimdata/rusttype"
	"github.com/brimdata/rusttype/rtson"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Input is the sequence of types decoded from one file.
type Input struct {
	Path  string
	Types []*rusttype.Type
}

type Flags struct {
	stopOnErr   bool
	parallelism int
	stdin       io.Reader
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.stopOnErr, "e", true, "stop upon input errors")
	fs.IntVar(&f.parallelism, "P", runtime.GOMAXPROCS(0), "number of input files to decode concurrently")
}

func (f *Flags) Init() error {
	if f.parallelism < 1 {
		return fmt.Errorf("-P must be positive: %d", f.parallelism)
	}
	return nil
}

// Open decodes every type document in each of paths, where "-" denotes
// standard input.  Files are decoded concurrently but the inputs are
// returned in the order of paths.  Unless stopOnErr is set, files that
// fail to decode are omitted and their errors returned alongside the
// inputs that succeeded.  Standard input may be named only once.
func (f *Flags) Open(ctx context.Context, paths []string) ([]Input, error) {
	if k := slices.Index(paths, "-"); k >= 0 && slices.Contains(paths[k+1:], "-") {
		return nil, errors.New("standard input (-) may be given only once")
	}
	inputs := make([]Input, len(paths))
	errs := make([]error, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(f.parallelism)
	for k, path := range paths {
		k, path := k, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			types, err := f.read(path)
			if err != nil {
				err = fmt.Errorf("%s: %w", path, err)
				if f.stopOnErr {
					return err
				}
				errs[k] = err
				return nil
			}
			inputs[k] = Input{Path: path, Types: types}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var out []Input
	for k, input := range inputs {
		if errs[k] == nil {
			out = append(out, input)
		}
	}
	return out, multierr.Combine(errs...)
}

func (f *Flags) read(path string) ([]*rusttype.Type, error) {
	if path == "-" {
		stdin := f.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return rtson.ReadAll(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return rtson.ReadAll(file)
}
