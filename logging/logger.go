// Package logging provides the leveled console logger shared by the renderer.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level orders log messages by severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelColors = [...]string{
	"\x1b[94m", "\x1b[36m", "\x1b[32m", "\x1b[33m", "\x1b[31m", "\x1b[35m",
}

const (
	colorReset   = "\x1b[0m"
	colorSource  = "\x1b[36m"
	colorMessage = "\x1b[37m"
)

func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps a case-insensitive level name to its Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		name = "WARN"
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelTrace, fmt.Errorf("unknown log level %q", s)
}

// Logger writes one line per message: timestamp, level tag, source
// location and the formatted message. Messages below Level, or any
// message while Quiet is set, are dropped.
type Logger struct {
	Level Level
	Quiet bool
	// Color enables ANSI escapes around the level tag and source location.
	Color bool

	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// New creates a colored logger writing to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		Level: level,
		Color: true,
		out:   w,
		now:   time.Now,
	}
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.log(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, format, args...) }

// Fatalf logs at LevelFatal. It does not exit; the caller owns process lifetime.
func (l *Logger) Fatalf(format string, args ...interface{}) { l.log(LevelFatal, format, args...) }

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && !l.Quiet && level >= l.Level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	// log -> Xf wrapper -> call site
	file, line := "???", 0
	if _, f, ln, ok := runtime.Caller(2); ok {
		file, line = filepath.Base(f), ln
	}

	msg := fmt.Sprintf(format, args...)
	stamp := l.now().Format("15:04:05")

	var b strings.Builder
	if l.Color {
		fmt.Fprintf(&b, "%s %s%-5s%s %s%s:%d:%s %s%s%s\n",
			stamp, levelColors[level], level, colorReset,
			colorSource, file, line, colorReset,
			colorMessage, msg, colorReset)
	} else {
		fmt.Fprintf(&b, "%s %-5s %s:%d: %s\n", stamp, level, file, line, msg)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, b.String())
}
