package rtson

import (
	"fmt"
	"io"

	"github.com/brimdata/rusttype"
	"gopkg.in/yaml.v3"
)

type WriterOpts struct {
	// Format is "yaml" (the default) or "text".  The text format writes
	// one line per type in the notation of rusttype.Type.String, with
	// simple type names colorized if color.Enabled is set, and cannot be
	// read back.
	Format string
}

type Writer struct {
	writer  io.Writer
	encoder *yaml.Encoder
}

func NewWriter(w io.Writer, opts WriterOpts) (*Writer, error) {
	switch opts.Format {
	case "", "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		return &Writer{writer: w, encoder: encoder}, nil
	case "text":
		return &Writer{writer: w}, nil
	}
	return nil, fmt.Errorf("unknown output format: %q", opts.Format)
}

func (w *Writer) Write(t *rusttype.Type) error {
	if w.encoder == nil {
		_, err := fmt.Fprintln(w.writer, formatText(t))
		return err
	}
	return w.encoder.Encode(encode(t))
}

func (w *Writer) Close() error {
	if w.encoder != nil {
		return w.encoder.Close()
	}
	return nil
}
