package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(name, []byte("old"), 0644))
	err := ReplaceFile(name, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "new", string(b))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReplaceFileAbort(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "types.yaml")
	require.NoError(t, os.WriteFile(name, []byte("old"), 0644))
	errFake := errors.New("fake error")
	err := ReplaceFile(name, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		require.NoError(t, err)
		return errFake
	})
	require.ErrorIs(t, err, errFake)
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "old", string(b))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
