// Package logging provides the leveled logger shared by the gizmo packages.
// The zap backend is the default; std and nop exist for tests and embedding.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/gekko3d/boundsbox/config"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// New builds the logger selected by cfg.Backend.
func New(cfg config.Logging) (Logger, error) {
	switch cfg.Backend {
	case config.BackendStd:
		return NewStdLogger(os.Stderr, cfg.Prefix, cfg.Level == "debug"), nil
	case config.BackendNop:
		return Nop{}, nil
	default:
		return NewZapLogger(cfg)
	}
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// StdLogger writes "<prefix> LEVEL: message" lines through the standard
// log package.
type StdLogger struct {
	debug atomic.Bool
	log   *log.Logger
}

func NewStdLogger(w io.Writer, prefix string, debug bool) *StdLogger {
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	l := &StdLogger{log: log.New(w, prefix, log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix)}
	l.debug.Store(debug)
	return l
}

func (l *StdLogger) DebugEnabled() bool        { return l.debug.Load() }
func (l *StdLogger) SetDebug(enabled bool)     { l.debug.Store(enabled) }
func (l *StdLogger) Debugf(f string, a ...any) { l.logf(levelDebug, f, a...) }
func (l *StdLogger) Infof(f string, a ...any)  { l.logf(levelInfo, f, a...) }
func (l *StdLogger) Warnf(f string, a ...any)  { l.logf(levelWarn, f, a...) }
func (l *StdLogger) Errorf(f string, a ...any) { l.logf(levelError, f, a...) }

func (l *StdLogger) logf(lv level, format string, args ...any) {
	if lv == levelDebug && !l.DebugEnabled() {
		return
	}
	l.log.Output(3, levelNames[lv]+": "+fmt.Sprintf(format, args...))
}

// Nop discards everything.
type Nop struct{}

func (Nop) DebugEnabled() bool    { return false }
func (Nop) SetDebug(bool)         {}
func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any)  {}
func (Nop) Warnf(string, ...any)  {}
func (Nop) Errorf(string, ...any) {}

// OrNop lets constructors accept a nil logger.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}
