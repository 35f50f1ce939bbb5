// Package logger builds the zap loggers used by the rusttype command.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Path string `yaml:"path"`
	// If Path is a file, Mode determines how the log file is managed.
	// FileModeAppend is the default.
	Mode FileMode `yaml:"mode,omitempty"`
	// If Names is not empty, only entries from loggers of those names
	// or their descendants are written.
	Names []string      `yaml:"names,omitempty"`
	Level zapcore.Level `yaml:"level"`
	// DevMode makes DPanic level entries panic.
	DevMode bool `yaml:"devmode"`
}

func NewCore(conf Config) (zapcore.Core, error) {
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(jsonEncoder(), w, conf.Level)
	if len(conf.Names) > 0 {
		core = newNameFilterCore(core, conf.Names)
	}
	return core, nil
}

func New(conf Config) (*zap.Logger, error) {
	core, err := NewCore(conf)
	if err != nil {
		return nil, err
	}
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}

func jsonEncoder() zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.CallerKey = ""
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(conf)
}
