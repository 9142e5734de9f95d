package logger

import (
	"fmt"

	"github.com/ecopay/ecopay/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

type Option func(*settings)

type settings struct {
	outputs []string
	cli     bool
}

// ForCLI logs to stderr without colors or timestamps, keeping stdout for
// command output. The default info level is raised to warn so routine
// request logs stay out of the way; debug still shows everything.
func ForCLI() Option {
	return func(s *settings) {
		s.outputs = []string{"stderr"}
		s.cli = true
	}
}

// InitLogger replaces the global zap logger.
func InitLogger(conf *config.Config, opts ...Option) error {
	c, err := newConfig(conf, opts...)
	if err != nil {
		return err
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

func newConfig(conf *config.Config, opts ...Option) (zap.Config, error) {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return zap.Config{}, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	s := settings{outputs: []string{"stdout"}}
	for _, opt := range opts {
		opt(&s)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	}
	encoding := "console"

	switch {
	case s.cli:
		encodeConfig.TimeKey = zapcore.OmitKey
		encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if lvl == zapcore.InfoLevel {
			lvl = zapcore.WarnLevel
		}
	case conf.IsProduction():
		// Relay logs are shipped, not read in a terminal.
		encoding = "json"
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      s.outputs,
		ErrorOutputPaths: []string{"stderr"},
	}, nil
}
