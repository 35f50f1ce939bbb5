package rtson

import (
	"bytes"

	"github.com/brimdata/rusttype"
	zqe "github.com/brimdata/rusttype/errors"
)

func Marshal(t *rusttype.Type) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, WriterOpts{})
	if err != nil {
		return nil, err
	}
	if err := w.Write(t); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one type document.
func Unmarshal(b []byte) (*rusttype.Type, error) {
	r := NewReader(bytes.NewReader(b))
	typ, err := r.Read()
	if err != nil {
		return nil, err
	}
	if typ == nil {
		return nil, zqe.E(zqe.Invalid, "empty document")
	}
	extra, err := r.Read()
	if err != nil {
		return nil, err
	}
	if extra != nil {
		return nil, zqe.E(zqe.Invalid, "more than one document")
	}
	return typ, nil
}
