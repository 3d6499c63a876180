package logging

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gekko3d/boundsbox/config"
)

// ZapLogger adapts a zap sugared logger to Logger. Debug output is
// toggled through an atomic level so SetDebug affects every core.
type ZapLogger struct {
	level zap.AtomicLevel
	base  zapcore.Level
	log   *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger writes to stdout and, when cfg.File is set, to a rotating file.
func NewZapLogger(cfg config.Logging) (*ZapLogger, error) {
	base, err := zapcore.ParseLevel(levelOrDefault(cfg.Level))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}
	level := zap.NewAtomicLevelAt(base)

	var cores []zapcore.Core
	if !cfg.Quiet {
		consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			NameKey:          "logger",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level))
	}

	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			NameKey:          "logger",
			MessageKey:       "msg",
			CallerKey:        "caller",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			EncodeCaller:     zapcore.ShortCallerEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	if cfg.Prefix != "" {
		l = l.Named(cfg.Prefix)
	}
	return &ZapLogger{level: level, base: base, log: l, sugar: l.Sugar()}, nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

func (z *ZapLogger) DebugEnabled() bool {
	return z.level.Enabled(zapcore.DebugLevel)
}

func (z *ZapLogger) SetDebug(enabled bool) {
	if enabled {
		z.level.SetLevel(zapcore.DebugLevel)
		return
	}
	if z.base == zapcore.DebugLevel {
		z.level.SetLevel(zapcore.InfoLevel)
		return
	}
	z.level.SetLevel(z.base)
}

func (z *ZapLogger) Debugf(format string, args ...any) { z.sugar.Debugf(format, args...) }
func (z *ZapLogger) Infof(format string, args ...any)  { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warnf(format string, args ...any)  { z.sugar.Warnf(format, args...) }
func (z *ZapLogger) Errorf(format string, args ...any) { z.sugar.Errorf(format, args...) }

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() {
	_ = z.log.Sync()
}
