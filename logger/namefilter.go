package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// nameFilterCore passes along only entries whose logger is one of names
// or is named beneath one of them (e.g., "merge.fuse" beneath "merge").
type nameFilterCore struct {
	zapcore.Core
	names []string
}

func newNameFilterCore(next zapcore.Core, names []string) zapcore.Core {
	return &nameFilterCore{next, names}
}

func (core *nameFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &nameFilterCore{core.Core.With(fields), core.names}
}

func (core *nameFilterCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if core.match(e.LoggerName) {
		return core.Core.Check(e, ce)
	}
	return ce
}

func (core *nameFilterCore) match(name string) bool {
	for _, n := range core.names {
		if name == n || strings.HasPrefix(name, n+".") {
			return true
		}
	}
	return false
}
