package rtson

import (
	"errors"
	"fmt"
	"io"

	"github.com/brimdata/rusttype"
	zqe "github.com/brimdata/rusttype/errors"
	"gopkg.in/yaml.v3"
)

// Reader decodes a stream of type documents separated by "---".
type Reader struct {
	decoder *yaml.Decoder
	ndoc    int
}

func NewReader(r io.Reader) *Reader {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	return &Reader{decoder: decoder}
}

// Read returns the next type in the stream or nil at end of stream.
func (r *Reader) Read() (*rusttype.Type, error) {
	var n node
	if err := r.decoder.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, zqe.E(zqe.Invalid, "document %d: %w", r.ndoc, err)
	}
	typ, err := decode(&n, "$")
	if err != nil {
		return nil, fmt.Errorf("document %d: %w", r.ndoc, err)
	}
	r.ndoc++
	return typ, nil
}

// ReadAll reads r to end of stream.
func ReadAll(r io.Reader) ([]*rusttype.Type, error) {
	reader := NewReader(r)
	var types []*rusttype.Type
	for {
		typ, err := reader.Read()
		if typ == nil || err != nil {
			return types, err
		}
		types = append(types, typ)
	}
}
