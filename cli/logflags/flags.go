package logflags

import (
	"flag"
	"strings"

	"github.com/brimdata/rusttype/logger"
	"go.uber.org/zap"
)

type Flags struct {
	Config logger.Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
	f.Config.Level = zap.WarnLevel
	fs.Var(&f.Config.Level, "log.level", "logging level")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	f.Config.Mode = logger.FileModeAppend
	fs.Var(&f.Config.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
	fs.Func("log.name", "only log entries from the named logger and its children (values: merge, merge.fuse, equal; may be repeated or comma-separated)", func(s string) error {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				f.Config.Names = append(f.Config.Names, name)
			}
		}
		return nil
	})
}

func (f *Flags) Open() (*zap.Logger, error) {
	return logger.New(f.Config)
}
