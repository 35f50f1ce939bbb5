package logflags

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	path := filepath.Join(t.TempDir(), "rusttype.log")
	require.NoError(t, fs.Parse([]string{
		"-log.path", path,
		"-log.level", "debug",
		"-log.name", "merge.fuse, equal",
		"-log.name", "cli",
	}))
	assert.Equal(t, []string{"merge.fuse", "equal", "cli"}, f.Config.Names)

	logger, err := f.Open()
	require.NoError(t, err)
	logger.Named("merge").Debug("parent")
	logger.Named("merge").Named("fuse").Debug("fused")
	logger.Named("equal").Debug("compared")
	require.NoError(t, logger.Sync())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "parent")
	assert.Contains(t, string(b), "fused")
	assert.Contains(t, string(b), "compared")
}
