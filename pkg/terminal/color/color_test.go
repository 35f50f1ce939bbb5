package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	Enabled = false
	assert.Equal(t, "x", Red.Colorize("x"))
	Enabled = true
	defer func() { Enabled = false }()
	assert.Equal(t, "\033[32mx\033[0m", Green.Colorize("x"))
}
