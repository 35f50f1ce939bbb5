package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

var errAborted = errors.New("replacer aborted")

// Replacer is an io.WriteCloser that atomically replaces the content of
// a file.  Writes go to a temporary file in the same directory, which
// Close renames over the target.  Abort discards the temporary file and
// leaves the target untouched.
type Replacer struct {
	tmp      *os.File
	filename string
	perm     os.FileMode
	err      error
}

func NewFileReplacer(filename string, perm os.FileMode) (*Replacer, error) {
	filename, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".tmp-"+filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	return &Replacer{tmp: tmp, filename: filename, perm: perm}, nil
}

func (r *Replacer) Write(b []byte) (int, error) {
	n, err := r.tmp.Write(b)
	if err != nil && r.err == nil {
		r.err = err
	}
	return n, err
}

func (r *Replacer) Abort() {
	if r.err == nil {
		r.err = errAborted
	}
	r.Close()
}

func (r *Replacer) Close() error {
	err := r.tmp.Close()
	if err == nil {
		err = os.Chmod(r.tmp.Name(), r.perm)
	}
	if err == nil {
		err = r.err
	}
	if err == nil {
		err = os.Rename(r.tmp.Name(), r.filename)
	}
	if err != nil {
		os.Remove(r.tmp.Name())
	}
	return err
}

// ReplaceFile calls fn with a writer whose content replaces that of the
// named file if fn returns nil.
func ReplaceFile(name string, perm os.FileMode, fn func(w io.Writer) error) error {
	r, err := NewFileReplacer(name, perm)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		r.Abort()
		return err
	}
	return r.Close()
}
