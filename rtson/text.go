package rtson

import (
	"strconv"
	"strings"

	"github.com/brimdata/rusttype"
	"github.com/brimdata/rusttype/pkg/terminal/color"
)

// formatText renders t in the notation of rusttype.Type.String with
// simple type names colorized when color is enabled.
func formatText(t *rusttype.Type) string {
	var b strings.Builder
	writeText(&b, t)
	return b.String()
}

func writeText(b *strings.Builder, t *rusttype.Type) {
	switch s := t.Shape.(type) {
	case *rusttype.Simple:
		b.WriteString(color.Cyan.Colorize(s.Name))
	case *rusttype.Array:
		b.WriteByte('[')
		writeText(b, s.Item)
		if s.Fixed != rusttype.Variable {
			b.WriteByte(';')
			b.WriteString(strconv.Itoa(s.Fixed))
		}
		b.WriteByte(']')
	case *rusttype.Enum:
		b.WriteByte('(')
		for k, c := range s.Cases {
			if k > 0 {
				b.WriteByte('|')
			}
			writeText(b, c)
		}
		b.WriteByte(')')
	case *rusttype.Struct:
		b.WriteByte('{')
		for k, f := range s.Fields {
			if k > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Name)
			b.WriteByte(':')
			writeText(b, f.Type)
		}
		b.WriteByte('}')
	}
}
