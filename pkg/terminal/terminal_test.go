package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidthFromEnv(t *testing.T) {
	if IsTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	t.Setenv("COLUMNS", "123")
	assert.Equal(t, 123, Width())
	t.Setenv("COLUMNS", "junk")
	assert.Equal(t, defaultWidth, Width())
}
