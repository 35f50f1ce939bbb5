package inputflags

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	zqe "github.com/brimdata/rusttype/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
	}
	return dir
}

func newFlags(t *testing.T, args ...string) *Flags {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	require.NoError(t, f.Init())
	return &f
}

func TestOpenOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.yaml": "kind: simple\nname: a\n---\nkind: simple\nname: b\n",
		"b.yaml": "{kind: simple, name: c}\n",
	})
	f := newFlags(t, "-P", "2")
	f.stdin = strings.NewReader("kind: simple\nname: d\n")
	paths := []string{filepath.Join(dir, "b.yaml"), "-", filepath.Join(dir, "a.yaml")}
	inputs, err := f.Open(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, inputs, 3)
	assert.Equal(t, paths[0], inputs[0].Path)
	assert.Equal(t, "c", inputs[0].Types[0].String())
	assert.Equal(t, "d", inputs[1].Types[0].String())
	require.Len(t, inputs[2].Types, 2)
	assert.Equal(t, "b", inputs[2].Types[1].String())
}

func TestOpenStdinOnce(t *testing.T) {
	f := newFlags(t)
	f.stdin = strings.NewReader("kind: simple\nname: a\n---\nkind: simple\nname: b\n")
	_, err := f.Open(context.Background(), []string{"-", "-"})
	assert.EqualError(t, err, "standard input (-) may be given only once")
	// stdin is left unread
	inputs, err := f.Open(context.Background(), []string{"-"})
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Len(t, inputs[0].Types, 2)
}

func TestOpenErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml": "kind: simple\nname: a\n",
		"bad.yaml":  "kind: tuple\n",
	})
	paths := []string{filepath.Join(dir, "good.yaml"), filepath.Join(dir, "bad.yaml"), filepath.Join(dir, "missing.yaml")}
	t.Run("stop", func(t *testing.T) {
		_, err := newFlags(t).Open(context.Background(), paths)
		require.Error(t, err)
	})
	t.Run("continue", func(t *testing.T) {
		inputs, err := newFlags(t, "-e=false").Open(context.Background(), paths)
		require.Len(t, inputs, 1)
		assert.Equal(t, paths[0], inputs[0].Path)
		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		assert.True(t, zqe.IsInvalid(errs[0]))
		assert.Contains(t, errs[0].Error(), "bad.yaml")
		assert.Contains(t, errs[1].Error(), "missing.yaml")
	})
}

func TestInitParallelism(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse([]string{"-P", "0"}))
	assert.EqualError(t, f.Init(), "-P must be positive: 0")
}
