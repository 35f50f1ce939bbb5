package outputflags

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/rusttype"
	"github.com/brimdata/rusttype/pkg/fs"
	"github.com/brimdata/rusttype/pkg/terminal"
	"github.com/brimdata/rusttype/pkg/terminal/color"
	"github.com/brimdata/rusttype/rtson"
)

type Flags struct {
	rtson.WriterOpts
	outputFile string
	color      bool
	stdout     io.Writer
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "f", "yaml", "format for output types [yaml,text]")
	fs.StringVar(&f.outputFile, "o", "", "write types to output file")
	fs.BoolVar(&f.color, "color", true, "enable/disable color formatting for terminal output")
}

func (f *Flags) Init() error {
	switch f.Format {
	case "yaml", "text":
	default:
		return fmt.Errorf("unknown output format: %q", f.Format)
	}
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	// Text output to a terminal has its type names colorized.
	color.Enabled = f.outputFile == "" && f.color && terminal.IsTerminal(os.Stdout)
	return nil
}

// WriteTypes writes types to standard output or, if -o was given, to the
// output file, which is replaced atomically.
func (f *Flags) WriteTypes(types ...*rusttype.Type) error {
	if f.outputFile == "" {
		w := f.stdout
		if w == nil {
			w = os.Stdout
		}
		return f.write(w, types)
	}
	return fs.ReplaceFile(f.outputFile, 0644, func(w io.Writer) error {
		return f.write(w, types)
	})
}

func (f *Flags) write(w io.Writer, types []*rusttype.Type) error {
	writer, err := rtson.NewWriter(w, f.WriterOpts)
	if err != nil {
		return err
	}
	for _, typ := range types {
		if err := writer.Write(typ); err != nil {
			return err
		}
	}
	return writer.Close()
}
